package mocks

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// MockURL 모든 Mock 응답에 설정되는 고정 URL입니다.
const MockURL = "mock_url"

// MockResponse 미리 녹화된 API 응답 하나를 표현합니다. (본문 텍스트 + 상태 코드)
//
// 값 타입이므로 한 번 만들어진 뒤에는 변경되지 않으며, 여러 Mock과 테스트에서 공유해도 안전합니다.
type MockResponse struct {
	Body       string
	StatusCode int
}

// HTTPResponse MockResponse를 *http.Response로 변환합니다.
//
// 호출할 때마다 새로운 Body Reader를 가진 응답 객체를 생성하므로, 같은 MockResponse를
// 여러 번 반환해도 각 응답의 Body를 독립적으로 읽을 수 있습니다.
// 상태 코드의 범위는 검증하지 않습니다.
func (r MockResponse) HTTPResponse() *http.Response {
	body := []byte(r.Body)

	header := make(http.Header)
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &http.Response{
		Status:        statusLine(r.StatusCode),
		StatusCode:    r.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request: &http.Request{
			Method: http.MethodGet,
			URL:    &url.URL{Path: MockURL},
			Header: make(http.Header),
		},
	}
}

// statusLine "200 OK" 형태의 상태 문자열을 반환합니다.
func statusLine(code int) string {
	if text := http.StatusText(code); text != "" {
		return strconv.Itoa(code) + " " + text
	}
	return strconv.Itoa(code)
}
