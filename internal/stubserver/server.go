// Package stubserver 픽스처 라이브러리로 Clockify API 경로에 응답하는 HTTP 스텁 서버를 제공합니다.
//
// 실제 Clockify 서버 없이 HTTPFetcher부터 ClockifyAPI까지의 전체 경로를 실행해 볼 수 있도록,
// 기록된 응답(fixtures)을 그대로 돌려줍니다.
package stubserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
	applog "github.com/darkkaiser/clockify-client/pkg/log"
)

const component = "stubserver"

const (
	// BasePath Clockify API v1 경로의 접두사입니다.
	BasePath = "/api/v1"

	shutdownTimeout = 5 * time.Second

	readHeaderTimeout = 10 * time.Second
)

// Config 스텁 서버 설정
type Config struct {
	Debug      bool
	ListenPort int
}

// Server 픽스처 응답을 제공하는 echo 서버입니다.
type Server struct {
	cfg Config
	e   *echo.Echo
}

// New 라우트와 미들웨어가 구성된 Server를 생성합니다.
func New(cfg Config) *Server {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = readHeaderTimeout

	e.Logger = echoLogger{Logger: applog.StandardLogger()}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger)

	registerRoutes(e)

	return &Server{cfg: cfg, e: e}
}

// Handler 서버의 http.Handler를 반환합니다.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Run 설정된 포트에서 서버를 실행하고 ctx가 취소되면 종료합니다.
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.ListenPort))
	if err != nil {
		return apperrors.Wrapf(err, apperrors.System, "스텁 서버 포트(%d)를 열 수 없습니다", s.cfg.ListenPort)
	}
	return s.Serve(ctx, l)
}

// Serve l에서 요청을 처리하고, ctx가 취소되면 진행 중인 요청을 기다린 뒤 종료합니다.
// 서버가 정상적으로 종료되면 nil을 반환합니다.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.e.Listener = l

	applog.WithComponentAndFields(component, applog.Fields{
		"addr": l.Addr().String(),
	}).Info("스텁 서버를 시작합니다")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.e.Start("")
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return apperrors.Wrap(err, apperrors.System, "스텁 서버 실행 중 오류가 발생했습니다")

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.e.Shutdown(shutdownCtx); err != nil {
		applog.WithComponent(component).WithError(err).Error("스텁 서버 종료 중 오류가 발생했습니다")
		<-errCh
		return apperrors.Wrap(err, apperrors.System, "스텁 서버를 정상적으로 종료하지 못했습니다")
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return apperrors.Wrap(err, apperrors.System, "스텁 서버 실행 중 오류가 발생했습니다")
	}

	applog.WithComponent(component).Info("스텁 서버가 종료되었습니다")

	return nil
}

// requestLogger 요청마다 메서드, 경로, 상태 코드, 처리 시간을 기록합니다. API 키는 마스킹됩니다.
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()

		fields := applog.Fields{
			"method":      req.Method,
			"path":        req.URL.Path,
			"status_code": res.Status,
			"duration":    time.Since(start).String(),
			"request_id":  res.Header().Get(echo.HeaderXRequestID),
		}
		if key := req.Header.Get(apiKeyHeader); key != "" {
			fields["api_key"] = applog.MaskSensitiveData(key)
		}

		applog.WithComponentAndFields(component, fields).Info("요청을 처리하였습니다")

		return nil
	}
}
