package fetcher_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher"
	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher/mocks"
	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitFetcher_WithinBurst(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockFetcher()
	m.SetResponse(mocks.MockResponse{Body: "{}", StatusCode: http.StatusOK})

	f := fetcher.NewRateLimitFetcher(m, 1, 3)

	for i := 0; i < 3; i++ {
		resp, err := fetcher.Get(context.Background(), f, "http://localhost/user")
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, 3, m.CallCount(mocks.VerbGet))
}

func TestRateLimitFetcher_ContextCanceled(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockFetcher()
	m.SetResponse(mocks.MockResponse{Body: "{}", StatusCode: http.StatusOK})

	// 버스트 1개를 소진한 뒤에는 다음 토큰까지 한참 기다려야 한다.
	f := fetcher.NewRateLimitFetcher(m, 0.001, 0)

	resp, err := fetcher.Get(context.Background(), f, "http://localhost/user")
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Get(ctx, f, "http://localhost/user")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	assert.Equal(t, 1, m.CallCount(mocks.VerbGet))
}
