package main

import (
	"context"
	"testing"

	"github.com/darkkaiser/clockify-client/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServe 전역 로거의 Test Hook을 사용하므로 순차 실행합니다.
func TestServe(t *testing.T) {
	hook := test.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	t.Run("컨텍스트가 취소되면 종료 로그를 남긴다", func(t *testing.T) {
		hook.Reset()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, serve(ctx, config.StubServerConfig{ListenPort: 0}, false))

		last := hook.LastEntry()
		require.NotNil(t, last)
		assert.Equal(t, logrus.InfoLevel, last.Level)
		assert.Equal(t, "스텁 서버를 종료하였습니다", last.Message)
		assert.Equal(t, "main", last.Data["component"])
	})

	t.Run("권장하지 않는 포트는 경고한다", func(t *testing.T) {
		hook.Reset()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// 0은 임의 포트이지만 1024 미만이므로 권장 사항 경고 대상이다.
		require.NoError(t, serve(ctx, config.StubServerConfig{ListenPort: 0}, false))

		var warned bool
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.WarnLevel {
				warned = true
			}
		}
		assert.True(t, warned)
	})
}
