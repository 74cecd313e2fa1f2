// Package fetcher Clockify API 서버로 HTTP 요청을 전송하는 Fetcher와 데코레이터들을 제공합니다.
//
// 실제 전송은 HTTPFetcher가 담당하고, 요청 속도 제한(RateLimitFetcher)과 로깅(LoggingFetcher)은
// 데코레이터로 감싸서 조합합니다. 테스트에서는 mocks 패키지의 MockFetcher로 전체 체인을 대체합니다.
package fetcher

import (
	"context"
	"io"
	"net/http"
)

// component Fetcher 로깅용 컴포넌트 이름
const component = "clockify.fetcher"

// Fetcher HTTP 요청을 수행하는 핵심 인터페이스입니다.
//
// 구현 시 주의사항:
//   - 반환된 응답 객체의 Body는 반드시 호출자가 닫아야 합니다.
//   - Context 취소 시 즉시 요청을 중단하고 적절한 에러를 반환해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get 지정된 URL로 HTTP GET 요청을 전송하는 헬퍼 함수입니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return do(f, req)
}

// Post 지정된 URL로 HTTP POST 요청을 전송하는 헬퍼 함수입니다.
func Post(ctx context.Context, f Fetcher, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return do(f, req)
}

func do(f Fetcher, req *http.Request) (*http.Response, error) {
	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			// 커넥션 재사용을 위해 응답 객체의 Body를 비우고 닫는다.
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	return resp, nil
}

// maxDrainBytes 커넥션 재사용을 위해 버릴 Body의 최대 크기입니다.
const maxDrainBytes = 64 * 1024

// drainAndCloseBody 응답 Body를 일정 크기까지 읽어서 버린 뒤 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	_ = body.Close()
}
