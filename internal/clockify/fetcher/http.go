package fetcher

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout HTTP 요청 전체에 대한 기본 타임아웃입니다.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent User-Agent 헤더가 없는 요청에 설정되는 기본값입니다.
	DefaultUserAgent = "clockify-client/1.0"
)

// HTTPFetcher net/http 클라이언트로 실제 요청을 전송하는 Fetcher 구현체입니다.
type HTTPFetcher struct {
	client *http.Client
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 지정된 타임아웃을 사용하는 새로운 HTTPFetcher 인스턴스를 생성합니다.
// timeout이 0 이하이면 DefaultTimeout을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do HTTP 요청을 실행합니다.
// 요청 헤더에 User-Agent가 없는 경우 DefaultUserAgent를 설정합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}

	return h.client.Do(req)
}

// CloseIdleConnections 유휴 상태의 Keep-Alive 연결을 모두 닫습니다.
func (h *HTTPFetcher) CloseIdleConnections() {
	h.client.CloseIdleConnections()
}
