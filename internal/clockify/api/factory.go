package api

import (
	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher"
	"github.com/darkkaiser/clockify-client/internal/config"
)

// NewClockifyAPIFromConfig 설정에 따라 Fetcher 체인(Logging → RateLimit → HTTP)을 구성하고
// base_url을 대상으로 하는 ClockifyAPI를 생성합니다.
func NewClockifyAPIFromConfig(cfg config.ClockifyConfig) *ClockifyAPI {
	f := fetcher.New(fetcher.Config{
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})

	return NewClockifyAPI(NewAPIServer(f, cfg.BaseURL))
}

// NewAPISessionFromConfig 설정의 API 키로 인증하는 APISession을 생성합니다.
func NewAPISessionFromConfig(cfg config.ClockifyConfig, opts ...SessionOption) *APISession {
	return NewAPISession(NewClockifyAPIFromConfig(cfg), cfg.APIKey, opts...)
}
