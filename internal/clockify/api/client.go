package api

import (
	"context"
	"fmt"
	"time"

	"github.com/darkkaiser/clockify-client/internal/clockify/model"
)

// API Clockify API 엔드포인트 호출을 추상화한 인터페이스입니다.
// APISession은 이 인터페이스에만 의존하므로 테스트에서 mocks.MockAPI로 대체할 수 있습니다.
type API interface {
	GetWorkspaces(ctx context.Context, apiKey string) ([]model.Workspace, error)
	GetUser(ctx context.Context, apiKey string) (model.User, error)
	GetUsers(ctx context.Context, apiKey string, ws model.Workspace) ([]model.User, error)
	GetProjects(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Project, error)
	GetClients(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Client, error)
	GetTasks(ctx context.Context, apiKey string, ws model.Workspace, p model.Project) ([]model.Task, error)
	GetTags(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Tag, error)
	AddTimeEntry(ctx context.Context, apiKey string, ws model.Workspace, entry model.TimeEntry) (model.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, apiKey string, ws model.Workspace, entry model.TimeEntry) (model.TimeEntry, error)
	SetActiveTimeEntryEnd(ctx context.Context, apiKey string, ws model.Workspace, u model.User, end time.Time) (*model.TimeEntry, error)
}

// ClockifyAPI APIServer의 응답을 model 타입으로 변환하는 API 구현체입니다.
// HTTP 요청의 세부 사항은 APIServer가 담당합니다.
type ClockifyAPI struct {
	server *APIServer
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ API = (*ClockifyAPI)(nil)

// NewClockifyAPI 새로운 ClockifyAPI를 생성합니다.
func NewClockifyAPI(server *APIServer) *ClockifyAPI {
	return &ClockifyAPI{server: server}
}

// GetWorkspaces API 키 소유자가 속한 모든 워크스페이스를 조회합니다.
func (a *ClockifyAPI) GetWorkspaces(ctx context.Context, apiKey string) ([]model.Workspace, error) {
	body, err := a.server.Get(ctx, "/workspaces", apiKey)
	if err != nil {
		return nil, err
	}
	return model.ParseWorkspaces(body)
}

// GetUser API 키 소유자를 조회합니다.
func (a *ClockifyAPI) GetUser(ctx context.Context, apiKey string) (model.User, error) {
	body, err := a.server.Get(ctx, "/user", apiKey)
	if err != nil {
		return model.User{}, err
	}
	return model.ParseUser(body)
}

// GetUsers 워크스페이스의 사용자 목록을 조회합니다.
func (a *ClockifyAPI) GetUsers(ctx context.Context, apiKey string, ws model.Workspace) ([]model.User, error) {
	body, err := a.server.Get(ctx, fmt.Sprintf("/workspaces/%s/users", ws.ID), apiKey)
	if err != nil {
		return nil, err
	}
	return model.ParseUsers(body)
}

// GetProjects 워크스페이스의 프로젝트 목록을 조회합니다.
func (a *ClockifyAPI) GetProjects(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Project, error) {
	body, err := a.server.Get(ctx, fmt.Sprintf("/workspaces/%s/projects", ws.ID), apiKey)
	if err != nil {
		return nil, err
	}
	return model.ParseProjects(body)
}

// GetClients 워크스페이스의 고객 목록을 조회합니다.
func (a *ClockifyAPI) GetClients(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Client, error) {
	body, err := a.server.Get(ctx, fmt.Sprintf("/workspaces/%s/clients", ws.ID), apiKey)
	if err != nil {
		return nil, err
	}
	return model.ParseClients(body)
}

// GetTasks 프로젝트의 태스크 목록을 조회합니다.
func (a *ClockifyAPI) GetTasks(ctx context.Context, apiKey string, ws model.Workspace, p model.Project) ([]model.Task, error) {
	body, err := a.server.Get(ctx, fmt.Sprintf("/workspaces/%s/projects/%s/tasks", ws.ID, p.ID), apiKey)
	if err != nil {
		return nil, err
	}
	return model.ParseTasks(body)
}

// GetTags 워크스페이스의 태그 목록을 조회합니다.
func (a *ClockifyAPI) GetTags(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Tag, error) {
	body, err := a.server.Get(ctx, fmt.Sprintf("/workspaces/%s/tags", ws.ID), apiKey)
	if err != nil {
		return nil, err
	}
	return model.ParseTags(body)
}

// AddTimeEntry 워크스페이스에 시간 기록을 추가하고, 서버가 생성한 기록을 반환합니다.
// entry.End가 비어 있으면 타이머가 시작됩니다.
func (a *ClockifyAPI) AddTimeEntry(ctx context.Context, apiKey string, ws model.Workspace, entry model.TimeEntry) (model.TimeEntry, error) {
	body, err := a.server.Post(ctx, fmt.Sprintf("/workspaces/%s/time-entries", ws.ID), apiKey, entry.RequestBody())
	if err != nil {
		return model.TimeEntry{}, err
	}
	return model.ParseTimeEntry(body)
}

// UpdateTimeEntry 기존 시간 기록(entry.ID)의 내용을 entry로 교체합니다.
func (a *ClockifyAPI) UpdateTimeEntry(ctx context.Context, apiKey string, ws model.Workspace, entry model.TimeEntry) (model.TimeEntry, error) {
	if entry.ID == "" {
		return model.TimeEntry{}, errMissingTimeEntryID
	}

	body, err := a.server.Update(ctx, fmt.Sprintf("/workspaces/%s/time-entries/%s", ws.ID, entry.ID), apiKey, entry.RequestBody())
	if err != nil {
		return model.TimeEntry{}, err
	}
	return model.ParseTimeEntry(body)
}

// SetActiveTimeEntryEnd 사용자의 실행 중인 타이머를 end 시각으로 종료합니다.
//
// 실행 중인 타이머가 없으면(서버가 404를 반환하면) nil, nil을 반환합니다.
func (a *ClockifyAPI) SetActiveTimeEntryEnd(ctx context.Context, apiKey string, ws model.Workspace, u model.User, end time.Time) (*model.TimeEntry, error) {
	body, err := a.server.Patch(ctx, fmt.Sprintf("/workspaces/%s/user/%s/time-entries", ws.ID, u.ID), apiKey, map[string]string{
		"end": model.FormatDatetime(end),
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	entry, err := model.ParseTimeEntry(body)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
