package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

// ErrorResponse API 서버가 에러 응답 본문에 담아 보내는 에러 정보입니다.
type ErrorResponse struct {
	Code    int
	Message string
}

func (r ErrorResponse) String() string {
	return fmt.Sprintf("code %d: %s", r.Code, r.Message)
}

// APIServerError API 서버가 2xx가 아닌 상태 코드를 반환했을 때의 에러입니다.
//
// 상태 코드에 따라 분류된 AppError를 감싸고 있으므로 apperrors.Is로 종류를 확인할 수 있습니다.
//
//	if apperrors.Is(err, apperrors.Unauthorized) {
//	    // API 키 확인
//	}
type APIServerError struct {
	StatusCode    int
	ErrorResponse ErrorResponse

	err error
}

func (e *APIServerError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("API 서버 에러 (HTTP %d, code %d): %s", e.StatusCode, e.ErrorResponse.Code, e.ErrorResponse.Message)
	}
	return e.err.Error()
}

func (e *APIServerError) Unwrap() error {
	return e.err
}

// newAPIServerError 상태 코드와 응답 본문으로 APIServerError를 생성합니다.
func newAPIServerError(method, path string, statusCode int, contentType string, body []byte) *APIServerError {
	errResp := parseErrorResponse(statusCode, contentType, body)

	return &APIServerError{
		StatusCode:    statusCode,
		ErrorResponse: errResp,
		err:           apperrors.Newf(errorTypeOf(statusCode), "API 요청(%s %s)이 실패하였습니다. (HTTP %d, %s)", method, path, statusCode, errResp),
	}
}

// errorTypeOf HTTP 상태 코드에 대응하는 ErrorType을 반환합니다.
func errorTypeOf(statusCode int) apperrors.ErrorType {
	switch {
	case statusCode == http.StatusUnauthorized:
		return apperrors.Unauthorized
	case statusCode == http.StatusForbidden:
		return apperrors.Forbidden
	case statusCode == http.StatusNotFound:
		return apperrors.NotFound
	case statusCode == http.StatusTooManyRequests, statusCode >= 500:
		return apperrors.Unavailable
	default:
		return apperrors.ExecutionFailed
	}
}

// parseErrorResponse 에러 응답 본문에서 에러 코드와 메시지를 추출합니다.
//
//   - JSON: "code"와 "message"(없으면 "description") 필드
//   - HTML: 게이트웨이/프록시가 반환한 에러 페이지의 <title>
//   - 그 밖: 본문 앞부분
//
// 코드가 없으면 HTTP 상태 코드를 사용합니다.
func parseErrorResponse(statusCode int, contentType string, body []byte) ErrorResponse {
	resp := ErrorResponse{Code: statusCode}

	trimmed := strings.TrimSpace(string(body))

	switch {
	case gjson.Valid(trimmed) && gjson.Parse(trimmed).IsObject():
		obj := gjson.Parse(trimmed)
		if code := obj.Get("code"); code.Exists() {
			resp.Code = int(code.Int())
		}
		resp.Message = obj.Get("message").String()
		if resp.Message == "" {
			resp.Message = obj.Get("description").String()
		}

	case strings.Contains(contentType, "text/html") || strings.HasPrefix(trimmed, "<"):
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed)); err == nil {
			resp.Message = strings.TrimSpace(doc.Find("title").First().Text())
			if resp.Message == "" {
				resp.Message = strings.TrimSpace(doc.Find("h1").First().Text())
			}
		}

	default:
		resp.Message = abbreviate(trimmed)
	}

	if resp.Message == "" {
		resp.Message = http.StatusText(statusCode)
	}

	return resp
}

// IsNotFound err가 API 서버의 404 응답으로 인한 에러인지 여부를 반환합니다.
func IsNotFound(err error) bool {
	var serverErr *APIServerError
	return errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusNotFound
}

// abbreviate 본문을 최대 200자(rune)로 자릅니다. 멀티바이트 문자는 중간에서 잘리지 않습니다.
func abbreviate(s string) string {
	const maxLen = 200

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

var errMissingTimeEntryID = apperrors.New(apperrors.InvalidInput, "수정할 시간 기록의 ID가 비어 있습니다")
