package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher"
	"github.com/darkkaiser/clockify-client/internal/config"
)

func TestNewAPISessionFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.ClockifyConfig{
		BaseURL:   "http://127.0.0.1:8088/api/v1/",
		APIKey:    "XkZ9-api-key",
		Timeout:   5 * time.Second,
		RateLimit: 2,
		RateBurst: 3,
	}

	session := NewAPISessionFromConfig(cfg)
	assert.Equal(t, "XkZ9-api-key", session.apiKey)

	client, ok := session.api.(*ClockifyAPI)
	require.True(t, ok)
	assert.Equal(t, "http://127.0.0.1:8088/api/v1", client.server.BaseURL())

	_, ok = client.server.fetcher.(*fetcher.LoggingFetcher)
	assert.True(t, ok, "설정으로 생성한 Fetcher 체인의 가장 바깥은 LoggingFetcher여야 합니다")
}
