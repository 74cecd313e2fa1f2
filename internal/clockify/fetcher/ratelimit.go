package fetcher

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitFetcher 초당 요청 수를 제한하는 미들웨어입니다.
//
// Clockify API는 API 키 단위로 요청 속도를 제한하므로, 서버가 429를 반환하기 전에
// 클라이언트 측에서 먼저 요청 간격을 조절합니다. 토큰이 없으면 요청 Context가
// 취소될 때까지 대기합니다.
type RateLimitFetcher struct {
	delegate Fetcher
	limiter  *rate.Limiter
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*RateLimitFetcher)(nil)

// NewRateLimitFetcher 초당 limit개, 최대 burst개의 요청을 허용하는 RateLimitFetcher를 생성합니다.
// burst가 1보다 작으면 1로 보정합니다.
func NewRateLimitFetcher(delegate Fetcher, limit float64, burst int) *RateLimitFetcher {
	if burst < 1 {
		burst = 1
	}

	return &RateLimitFetcher{
		delegate: delegate,
		limiter:  rate.NewLimiter(rate.Limit(limit), burst),
	}
}

// Do 토큰을 획득한 뒤 요청을 위임합니다.
func (f *RateLimitFetcher) Do(req *http.Request) (*http.Response, error) {
	if err := f.limiter.Wait(req.Context()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("요청 속도 제한 대기 중 요청이 취소되었습니다. (URL: %s)", redactURL(req.URL)))
	}

	return f.delegate.Do(req)
}
