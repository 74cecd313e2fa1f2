// Package log logrus 기반의 애플리케이션 로깅을 제공합니다.
//
// 모든 로그는 component 필드를 포함하며, Setup 호출 이후에는 파일(lumberjack 로테이션)과
// 콘솔로 분배됩니다. Setup을 호출하지 않은 라이브러리/테스트 환경에서는 logrus 기본 출력을 사용합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(logrus.TraceLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

// MaskSensitiveData API 키 등 민감한 값을 로그에 남길 수 있도록 마스킹합니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 키는 앞 4자 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}
