package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/clockify-client/internal/stubserver"
	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

// writeStubConfig 스텁 서버를 base_url로 사용하는 설정 파일을 생성합니다.
func writeStubConfig(t *testing.T, baseURL, apiKey string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clockify-client.json")
	content := `{"clockify": {"base_url": "` + baseURL + `", "api_key": "` + apiKey + `", "rate_limit": 100}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(stubserver.New(stubserver.Config{}).Handler())
	defer srv.Close()
	defer http.DefaultTransport.(*http.Transport).CloseIdleConnections()

	cfgPath := writeStubConfig(t, srv.URL+stubserver.BasePath, "XkZ9-api-key")

	tests := []struct {
		name     string
		args     []string
		contains string
		errType  apperrors.ErrorType
		wantErr  bool
	}{
		{name: "워크스페이스", args: []string{"workspaces"}, contains: "5e5b8b0a95ae537fbde06e2f"},
		{name: "사용자", args: []string{"user"}, contains: "User ("},
		{name: "프로젝트 목록", args: []string{"projects"}, contains: "5e5b9c7995ae537fbde0778c"},
		{name: "타이머 시작", args: []string{"start", "testing description"}, contains: "TimeEntry ("},
		{name: "프로젝트 지정 타이머 시작", args: []string{"start", "testing", "5e5b9c7995ae537fbde0778c"}, contains: "TimeEntry ("},
		{name: "실행 중인 타이머 없음", args: []string{"stop"}, contains: "실행 중인 타이머가 없습니다"},
		{name: "없는 프로젝트", args: []string{"start", "testing", "missing"}, wantErr: true, errType: apperrors.NotFound},
		{name: "설명 누락", args: []string{"start"}, wantErr: true, errType: apperrors.InvalidInput},
		{name: "알 수 없는 명령", args: []string{"delete"}, wantErr: true, errType: apperrors.InvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := run(context.Background(), append([]string{"--config", cfgPath}, tt.args...), &out)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, tt.errType), err.Error())
				return
			}

			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestRun_AuthError(t *testing.T) {
	srv := httptest.NewServer(stubserver.New(stubserver.Config{}).Handler())
	defer srv.Close()
	defer http.DefaultTransport.(*http.Transport).CloseIdleConnections()

	var out bytes.Buffer
	err := run(context.Background(), []string{"--config", writeStubConfig(t, srv.URL+stubserver.BasePath, ""), "user"}, &out)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unauthorized))
}

func TestRun_NoCommand(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), nil, &out)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, out.String(), "Usage:")
}
