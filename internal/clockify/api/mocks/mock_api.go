// Package mocks api 패키지의 테스트를 위한 Mock 구현체를 제공합니다.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/darkkaiser/clockify-client/internal/clockify/api"
	"github.com/darkkaiser/clockify-client/internal/clockify/model"
)

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ api.API = (*MockAPI)(nil)

// MockAPI api.API 인터페이스의 Mock 구현체 (Testify 사용)
type MockAPI struct {
	mock.Mock
}

// NewMockAPI 새로운 MockAPI 인스턴스를 생성합니다.
func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

func (m *MockAPI) GetWorkspaces(ctx context.Context, apiKey string) ([]model.Workspace, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Workspace), args.Error(1)
}

func (m *MockAPI) GetUser(ctx context.Context, apiKey string) (model.User, error) {
	args := m.Called(ctx, apiKey)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAPI) GetUsers(ctx context.Context, apiKey string, ws model.Workspace) ([]model.User, error) {
	args := m.Called(ctx, apiKey, ws)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockAPI) GetProjects(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Project, error) {
	args := m.Called(ctx, apiKey, ws)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockAPI) GetClients(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Client, error) {
	args := m.Called(ctx, apiKey, ws)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockAPI) GetTasks(ctx context.Context, apiKey string, ws model.Workspace, p model.Project) ([]model.Task, error) {
	args := m.Called(ctx, apiKey, ws, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockAPI) GetTags(ctx context.Context, apiKey string, ws model.Workspace) ([]model.Tag, error) {
	args := m.Called(ctx, apiKey, ws)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockAPI) AddTimeEntry(ctx context.Context, apiKey string, ws model.Workspace, entry model.TimeEntry) (model.TimeEntry, error) {
	args := m.Called(ctx, apiKey, ws, entry)
	return args.Get(0).(model.TimeEntry), args.Error(1)
}

func (m *MockAPI) UpdateTimeEntry(ctx context.Context, apiKey string, ws model.Workspace, entry model.TimeEntry) (model.TimeEntry, error) {
	args := m.Called(ctx, apiKey, ws, entry)
	return args.Get(0).(model.TimeEntry), args.Error(1)
}

func (m *MockAPI) SetActiveTimeEntryEnd(ctx context.Context, apiKey string, ws model.Workspace, u model.User, end time.Time) (*model.TimeEntry, error) {
	args := m.Called(ctx, apiKey, ws, u, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TimeEntry), args.Error(1)
}
