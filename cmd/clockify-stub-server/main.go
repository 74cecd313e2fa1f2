package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/clockify-client/internal/config"
	"github.com/darkkaiser/clockify-client/internal/stubserver"
	applog "github.com/darkkaiser/clockify-client/pkg/log"
)

// 빌드 정보 변수 (ldflags로 주입됨)
var (
	Version   = "dev"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	closer, err := applog.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	defer closer.Close()

	applog.SetDebugMode(appConfig.Debug)

	applog.WithComponentAndFields("main", applog.Fields{
		"version":    Version,
		"build_date": BuildDate,
		"port":       appConfig.StubServer.ListenPort,
	}).Info("스텁 서버 초기화 시작")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, appConfig.StubServer, appConfig.Debug)
}

// serve 스텁 서버를 실행하고 ctx가 취소될 때까지 대기합니다.
func serve(ctx context.Context, cfg config.StubServerConfig, debug bool) error {
	for _, warning := range cfg.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	server := stubserver.New(stubserver.Config{
		Debug:      debug,
		ListenPort: cfg.ListenPort,
	})

	if err := server.Run(ctx); err != nil {
		applog.WithComponent("main").WithError(err).Error("스텁 서버 실행 실패")
		return err
	}

	applog.WithComponent("main").Info("스텁 서버를 종료하였습니다")

	return nil
}
