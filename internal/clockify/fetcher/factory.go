package fetcher

import (
	"time"
)

// Config Fetcher 체인을 구성하기 위한 설정입니다.
type Config struct {
	// Timeout HTTP 요청 전체에 대한 타임아웃입니다. 0 이하이면 DefaultTimeout을 사용합니다.
	Timeout time.Duration

	// RateLimit 초당 허용 요청 수입니다. 0 이하이면 속도 제한을 적용하지 않습니다.
	RateLimit float64

	// RateBurst 순간적으로 허용되는 최대 요청 수입니다.
	RateBurst int

	// DisableLogging true이면 LoggingFetcher를 체인에 추가하지 않습니다.
	DisableLogging bool
}

// New 설정에 따라 Fetcher 체인을 구성합니다.
//
// 체인 구성 순서 (바깥쪽부터):
//
//	LoggingFetcher → RateLimitFetcher → HTTPFetcher
//
// 로깅이 가장 바깥에 위치하므로, 기록되는 소요 시간에는 속도 제한 대기 시간이 포함됩니다.
func New(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout)

	if cfg.RateLimit > 0 {
		f = NewRateLimitFetcher(f, cfg.RateLimit, cfg.RateBurst)
	}

	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f)
	}

	return f
}
