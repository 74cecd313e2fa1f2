package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/darkkaiser/clockify-client/internal/clockify/api"
	"github.com/darkkaiser/clockify-client/internal/clockify/model"
	"github.com/darkkaiser/clockify-client/internal/config"
	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
	applog "github.com/darkkaiser/clockify-client/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// run 인자를 해석하여 명령을 실행합니다. 인자 해석 에러는 InvalidInput으로 분류됩니다.
func run(ctx context.Context, args []string, out io.Writer) error {
	if args == nil {
		args = []string{}
	}

	root := newRootCommand(ctx)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	err := root.Execute()
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(err, apperrors.InvalidInput, "실행 인자가 올바르지 않습니다")
}

// cli 하위 명령들이 공유하는 상태입니다. 세션은 PersistentPreRunE에서 설정 파일로부터 생성됩니다.
type cli struct {
	configFile string
	session    *api.APISession
}

func newRootCommand(ctx context.Context) *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "clockify",
		Short:         "Clockify 시간 기록 클라이언트",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return apperrors.New(apperrors.InvalidInput, "명령이 지정되지 않았습니다")
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "설정 파일 경로 (기본값: "+config.DefaultFilename+")")

	root.AddCommand(
		&cobra.Command{
			Use:   "workspaces",
			Short: "기본 워크스페이스",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ws, err := c.session.DefaultWorkspace(ctx)
				if err != nil {
					return err
				}
				cmd.Println(ws)
				return nil
			},
		},
		&cobra.Command{
			Use:   "user",
			Short: "API 키 소유자",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				u, err := c.session.User(ctx)
				if err != nil {
					return err
				}
				cmd.Println(u)
				return nil
			},
		},
		&cobra.Command{
			Use:   "projects",
			Short: "기본 워크스페이스의 프로젝트 목록",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				projects, err := c.projects(ctx)
				if err != nil {
					return err
				}
				for _, p := range projects {
					cmd.Println(p)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "start <설명> [프로젝트 ID]",
			Short: "타이머 시작",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var project *model.Project
				if len(args) == 2 {
					p, err := c.findProject(ctx, args[1])
					if err != nil {
						return err
					}
					project = &p
				}

				entry, err := c.session.AddTimeEntry(ctx, time.Now().UTC(), time.Time{}, args[0], project)
				if err != nil {
					return err
				}
				cmd.Println(entry)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "실행 중인 타이머 종료",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				entry, err := c.session.StopTimer(ctx, time.Time{})
				if err != nil {
					return err
				}
				if entry == nil {
					cmd.Println("실행 중인 타이머가 없습니다")
					return nil
				}
				cmd.Println(*entry)
				return nil
			},
		},
	)

	return root
}

func (c *cli) init() error {
	var appConfig *config.AppConfig
	var err error
	if c.configFile != "" {
		appConfig, err = config.LoadWithFile(c.configFile)
	} else {
		appConfig, err = config.Load()
	}
	if err != nil {
		return err
	}

	applog.SetDebugMode(appConfig.Debug)
	for _, warning := range appConfig.Clockify.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	c.session = api.NewAPISessionFromConfig(appConfig.Clockify)

	return nil
}

func (c *cli) projects(ctx context.Context) ([]model.Project, error) {
	ws, err := c.session.DefaultWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	return c.session.Projects(ctx, ws)
}

func (c *cli) findProject(ctx context.Context, id string) (model.Project, error) {
	projects, err := c.projects(ctx)
	if err != nil {
		return model.Project{}, err
	}
	for _, p := range projects {
		if strings.EqualFold(p.ID, id) {
			return p, nil
		}
	}
	return model.Project{}, apperrors.Newf(apperrors.NotFound, "프로젝트를 찾을 수 없습니다: %s", id)
}
