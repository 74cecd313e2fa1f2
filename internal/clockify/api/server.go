// Package api Clockify REST API 클라이언트를 제공합니다.
//
// 계층 구성:
//   - APIServer: HTTP 요청/응답 처리 (인증 헤더, JSON 본문, 에러 응답 분류)
//   - ClockifyAPI: API 엔드포인트를 model 타입으로 변환
//   - APISession: 하나의 API 키와 기본 워크스페이스에 묶인 사용 편의 계층 (조회 결과 캐시)
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher"
	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
	applog "github.com/darkkaiser/clockify-client/pkg/log"
)

// component API 클라이언트 로깅용 컴포넌트 이름
const component = "clockify.api"

// DefaultBaseURL Clockify API의 기본 주소입니다.
const DefaultBaseURL = "https://api.clockify.me/api/v1"

// maxResponseBodySize 읽어들일 응답 본문의 최대 크기입니다.
const maxResponseBodySize = 10 * 1024 * 1024

// APIServer Clockify API 서버와의 HTTP 통신을 담당합니다.
//
// 모든 요청에 X-Api-Key 헤더를 설정하고, 2xx 응답은 본문을 그대로 반환하며,
// 그 밖의 응답은 *APIServerError로 변환합니다.
type APIServer struct {
	fetcher fetcher.Fetcher
	baseURL string
}

// NewAPIServer 새로운 APIServer를 생성합니다. baseURL이 비어 있으면 DefaultBaseURL을 사용합니다.
func NewAPIServer(f fetcher.Fetcher, baseURL string) *APIServer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &APIServer{
		fetcher: f,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL API 서버 주소를 반환합니다.
func (s *APIServer) BaseURL() string {
	return s.baseURL
}

// Get GET 요청을 전송하고 응답 본문을 반환합니다.
func (s *APIServer) Get(ctx context.Context, path, apiKey string) ([]byte, error) {
	return s.do(ctx, http.MethodGet, path, apiKey, nil)
}

// Post data를 JSON 본문으로 POST 요청을 전송합니다.
func (s *APIServer) Post(ctx context.Context, path, apiKey string, data any) ([]byte, error) {
	return s.do(ctx, http.MethodPost, path, apiKey, data)
}

// Patch data를 JSON 본문으로 PATCH 요청을 전송합니다.
func (s *APIServer) Patch(ctx context.Context, path, apiKey string, data any) ([]byte, error) {
	return s.do(ctx, http.MethodPatch, path, apiKey, data)
}

// Update data를 JSON 본문으로 PUT 요청을 전송합니다.
func (s *APIServer) Update(ctx context.Context, path, apiKey string, data any) ([]byte, error) {
	return s.do(ctx, http.MethodPut, path, apiKey, data)
}

func (s *APIServer) do(ctx context.Context, method, path, apiKey string, data any) ([]byte, error) {
	url := s.baseURL + "/" + strings.TrimLeft(path, "/")

	var body io.Reader
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "요청 본문(%s %s)을 JSON으로 변환할 수 없습니다", method, path)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Internal, "API 요청(%s %s) 생성에 실패했습니다", method, path)
	}
	req.Header.Set(fetcher.APIKeyHeader, apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.fetcher.Do(req)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Unavailable, "API 요청(%s %s) 전송 중 에러가 발생했습니다", method, path)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")

	respBody, err := readBody(resp.Body, contentType)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ExecutionFailed, "API 응답(%s %s) 본문을 읽을 수 없습니다", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := newAPIServerError(method, path, resp.StatusCode, contentType, respBody)

		applog.WithComponentAndFields(component, applog.Fields{
			"method":      method,
			"path":        path,
			"status_code": resp.StatusCode,
			"error_code":  serverErr.ErrorResponse.Code,
		}).Warn(serverErr.ErrorResponse.Message)

		return nil, serverErr
	}

	return respBody, nil
}

// readBody Content-Type의 charset에 따라 응답 본문을 UTF-8로 변환하여 읽습니다.
func readBody(r io.Reader, contentType string) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxResponseBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > maxResponseBodySize {
		return nil, fmt.Errorf("응답 본문이 최대 크기(%d 바이트)를 초과했습니다", maxResponseBodySize)
	}
	if len(raw) == 0 {
		return raw, nil
	}

	utf8Reader, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return nil, err
	}

	return io.ReadAll(utf8Reader)
}
