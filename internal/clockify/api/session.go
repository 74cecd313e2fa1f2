package api

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/darkkaiser/clockify-client/internal/clockify/model"
	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
	applog "github.com/darkkaiser/clockify-client/pkg/log"
)

// sessionComponent APISession 로깅용 컴포넌트 이름
const sessionComponent = "clockify.session"

// APISession 하나의 API 키 소유자가 하나의 워크스페이스에서 작업하는 흐름을 표현합니다.
//
// 두 가지를 가정하여 사용을 단순화합니다.
//   - 모든 작업은 API 키 소유자 본인의 것입니다.
//   - 모든 작업은 기본 워크스페이스(조회된 첫 번째 워크스페이스)에서 이루어집니다.
//
// 워크스페이스, 사용자, 프로젝트 등의 조회 결과는 세션이 살아있는 동안 캐시됩니다.
// 실패한 조회는 캐시하지 않으며, 같은 항목을 동시에 조회하면 API 호출은 한 번만 발생합니다.
type APISession struct {
	api    API
	apiKey string
	now    func() time.Time

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]any
}

// SessionOption APISession 생성 옵션입니다.
type SessionOption func(*APISession)

// WithClock StopTimer가 종료 시각을 지정하지 않았을 때 사용할 현재 시각 함수를 설정합니다.
func WithClock(now func() time.Time) SessionOption {
	return func(s *APISession) {
		s.now = now
	}
}

// NewAPISession 새로운 APISession을 생성합니다.
func NewAPISession(api API, apiKey string, opts ...SessionOption) *APISession {
	s := &APISession{
		api:    api,
		apiKey: apiKey,
		now:    func() time.Time { return time.Now().UTC() },
		cache:  make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cached key에 해당하는 캐시 값을 반환합니다. 없으면 load를 호출하여 결과를 캐시합니다.
func cached[T any](ctx context.Context, s *APISession, key string, load func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	if v, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return v.(T), nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (any, error) {
		s.mu.Lock()
		if v, ok := s.cache[key]; ok {
			s.mu.Unlock()
			return v, nil
		}
		s.mu.Unlock()

		applog.WithComponentAndFields(sessionComponent, applog.Fields{"key": key}).Debug("API 조회 결과를 캐시에 적재합니다")

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cache[key] = v
		s.mu.Unlock()

		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

// DefaultWorkspace 기본 워크스페이스(조회된 첫 번째 워크스페이스)를 반환합니다.
func (s *APISession) DefaultWorkspace(ctx context.Context) (model.Workspace, error) {
	return cached(ctx, s, "workspace", func(ctx context.Context) (model.Workspace, error) {
		workspaces, err := s.api.GetWorkspaces(ctx, s.apiKey)
		if err != nil {
			return model.Workspace{}, err
		}
		if len(workspaces) == 0 {
			return model.Workspace{}, apperrors.New(apperrors.NotFound, "API 키 소유자가 속한 워크스페이스가 없습니다")
		}
		return workspaces[0], nil
	})
}

// User API 키 소유자를 반환합니다.
func (s *APISession) User(ctx context.Context) (model.User, error) {
	return cached(ctx, s, "user", func(ctx context.Context) (model.User, error) {
		return s.api.GetUser(ctx, s.apiKey)
	})
}

// Users 워크스페이스의 사용자 목록을 반환합니다.
func (s *APISession) Users(ctx context.Context, ws model.Workspace) ([]model.User, error) {
	return cached(ctx, s, "users/"+ws.ID, func(ctx context.Context) ([]model.User, error) {
		return s.api.GetUsers(ctx, s.apiKey, ws)
	})
}

// Projects 워크스페이스의 프로젝트 목록을 반환합니다.
func (s *APISession) Projects(ctx context.Context, ws model.Workspace) ([]model.Project, error) {
	return cached(ctx, s, "projects/"+ws.ID, func(ctx context.Context) ([]model.Project, error) {
		return s.api.GetProjects(ctx, s.apiKey, ws)
	})
}

// Tasks 프로젝트의 태스크 목록을 반환합니다.
func (s *APISession) Tasks(ctx context.Context, ws model.Workspace, p model.Project) ([]model.Task, error) {
	return cached(ctx, s, "tasks/"+ws.ID+"/"+p.ID, func(ctx context.Context) ([]model.Task, error) {
		return s.api.GetTasks(ctx, s.apiKey, ws, p)
	})
}

// Tags 워크스페이스의 태그 목록을 반환합니다.
func (s *APISession) Tags(ctx context.Context, ws model.Workspace) ([]model.Tag, error) {
	return cached(ctx, s, "tags/"+ws.ID, func(ctx context.Context) ([]model.Tag, error) {
		return s.api.GetTags(ctx, s.apiKey, ws)
	})
}

// AddTimeEntryObject 기본 워크스페이스에 시간 기록을 추가합니다.
func (s *APISession) AddTimeEntryObject(ctx context.Context, entry model.TimeEntry) (model.TimeEntry, error) {
	ws, err := s.DefaultWorkspace(ctx)
	if err != nil {
		return model.TimeEntry{}, err
	}

	return s.api.AddTimeEntry(ctx, s.apiKey, ws, entry)
}

// AddTimeEntry 기본 워크스페이스에 시간 기록을 추가합니다.
// end가 zero value이면 타이머가 시작되며, 이전에 실행 중이던 타이머는 서버에서 종료됩니다.
// project가 nil이면 프로젝트 없이 기록합니다.
func (s *APISession) AddTimeEntry(ctx context.Context, start, end time.Time, description string, project *model.Project) (model.TimeEntry, error) {
	entry := model.TimeEntry{
		Start:       start,
		End:         end,
		Description: description,
	}
	if project != nil {
		entry.ProjectID = project.ID
	}

	return s.AddTimeEntryObject(ctx, entry)
}

// StopTimer 실행 중인 타이머를 stop 시각으로 종료하고 종료된 기록을 반환합니다.
// stop이 zero value이면 현재 시각을 사용합니다. 실행 중인 타이머가 없으면 nil, nil을 반환합니다.
func (s *APISession) StopTimer(ctx context.Context, stop time.Time) (*model.TimeEntry, error) {
	if stop.IsZero() {
		stop = s.now()
	}

	ws, err := s.DefaultWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.User(ctx)
	if err != nil {
		return nil, err
	}

	return s.api.SetActiveTimeEntryEnd(ctx, s.apiKey, ws, u, stop)
}
