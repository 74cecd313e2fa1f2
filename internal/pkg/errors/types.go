package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (잘못된 사용, 설정되지 않은 Mock 호출 등)
	Internal

	// System 시스템 또는 인프라 오류 (파일, 설정 로드 등)
	System

	// Unauthorized API 키 누락 또는 잘못된 API 키
	Unauthorized

	// Forbidden 접근 권한 부족
	Forbidden

	// InvalidInput 잘못된 입력값
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed API 호출 또는 요청 처리 실패
	ExecutionFailed

	// ParsingFailed 응답 데이터 파싱 실패
	ParsingFailed

	// Unavailable 네트워크 장애, 요청 한도 초과 등 일시적 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
