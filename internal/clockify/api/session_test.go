package api_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/clockify-client/internal/clockify/api"
	apimocks "github.com/darkkaiser/clockify-client/internal/clockify/api/mocks"
	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher/mocks"
	"github.com/darkkaiser/clockify-client/internal/clockify/fixtures"
	"github.com/darkkaiser/clockify-client/internal/clockify/model"
	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

var testTimeEntry = model.TimeEntry{
	Start:       time.Date(2019, 10, 12, 14, 10, 1, 0, time.UTC),
	Description: "test description",
	ProjectID:   testProject.ID,
}

// newMockAPI 모든 메서드가 기본 객체를 반환하는 MockAPI를 생성합니다.
func newMockAPI() *apimocks.MockAPI {
	m := apimocks.NewMockAPI()
	m.On("GetProjects", mock.Anything, "test", testWorkspace).Return([]model.Project{testProject}, nil).Maybe()
	m.On("GetUser", mock.Anything, "test").Return(testUser, nil).Maybe()
	m.On("GetUsers", mock.Anything, "test", testWorkspace).Return([]model.User{testUser}, nil).Maybe()
	m.On("AddTimeEntry", mock.Anything, "test", testWorkspace, mock.Anything).Return(testTimeEntry, nil).Maybe()
	m.On("SetActiveTimeEntryEnd", mock.Anything, "test", testWorkspace, testUser, mock.Anything).Return(&testTimeEntry, nil).Maybe()
	return m
}

func TestAPISession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stopAt := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)

	m := newMockAPI()
	m.On("GetWorkspaces", mock.Anything, "test").Return([]model.Workspace{testWorkspace}, nil).Once()

	session := api.NewAPISession(m, "test", api.WithClock(func() time.Time { return stopAt }))

	entry, err := session.AddTimeEntry(ctx, time.Time{}, time.Time{}, "test", nil)
	require.NoError(t, err)
	assert.Equal(t, testTimeEntry, entry)

	stopped, err := session.StopTimer(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, &testTimeEntry, stopped)

	m.AssertCalled(t, "AddTimeEntry", mock.Anything, "test", testWorkspace, model.TimeEntry{Description: "test"})
	m.AssertCalled(t, "SetActiveTimeEntryEnd", mock.Anything, "test", testWorkspace, testUser, stopAt)

	// 기본 워크스페이스는 한 번만 조회된다.
	m.AssertNumberOfCalls(t, "GetWorkspaces", 1)
	m.AssertExpectations(t)
}

func TestAPISession_AddTimeEntry_WithProject(t *testing.T) {
	t.Parallel()

	m := newMockAPI()
	m.On("GetWorkspaces", mock.Anything, "test").Return([]model.Workspace{testWorkspace}, nil)

	start := time.Date(2020, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	_, err := api.NewAPISession(m, "test").AddTimeEntry(context.Background(), start, end, "tea", &testProject)
	require.NoError(t, err)

	m.AssertCalled(t, "AddTimeEntry", mock.Anything, "test", testWorkspace, model.TimeEntry{
		Start:       start,
		End:         end,
		Description: "tea",
		ProjectID:   testProject.ID,
	})
}

func TestAPISession_StopTimer_ExplicitTime(t *testing.T) {
	t.Parallel()

	m := newMockAPI()
	m.On("GetWorkspaces", mock.Anything, "test").Return([]model.Workspace{testWorkspace}, nil)

	stopAt := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	session := api.NewAPISession(m, "test", api.WithClock(func() time.Time {
		t.Fatal("명시적인 종료 시각이 있으면 현재 시각을 사용하지 않아야 합니다")
		return time.Time{}
	}))

	_, err := session.StopTimer(context.Background(), stopAt)
	require.NoError(t, err)
	m.AssertCalled(t, "SetActiveTimeEntryEnd", mock.Anything, "test", testWorkspace, testUser, stopAt)
}

func TestAPISession_StopTimer_NoRunningTimer(t *testing.T) {
	t.Parallel()

	m := apimocks.NewMockAPI()
	m.On("GetWorkspaces", mock.Anything, "test").Return([]model.Workspace{testWorkspace}, nil)
	m.On("GetUser", mock.Anything, "test").Return(testUser, nil)
	m.On("SetActiveTimeEntryEnd", mock.Anything, "test", testWorkspace, testUser, mock.Anything).Return(nil, nil)

	stopped, err := api.NewAPISession(m, "test").StopTimer(context.Background(), time.Time{})
	assert.NoError(t, err)
	assert.Nil(t, stopped)
}

func TestAPISession_Exception(t *testing.T) {
	t.Parallel()

	apiErr := &api.APIServerError{
		StatusCode:    999,
		ErrorResponse: api.ErrorResponse{Code: 999, Message: "mock error"},
	}

	m := newMockAPI()
	m.On("GetWorkspaces", mock.Anything, "test").Return(nil, error(apiErr))

	_, err := api.NewAPISession(m, "test").AddTimeEntry(context.Background(), time.Time{}, time.Time{}, "test", nil)
	require.Error(t, err)
	assert.Same(t, apiErr, err)
	m.AssertNotCalled(t, "AddTimeEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAPISession_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	failure := apperrors.New(apperrors.Unavailable, "temporary")

	m := apimocks.NewMockAPI()
	m.On("GetUser", mock.Anything, "test").Return(model.User{}, failure).Once()
	m.On("GetUser", mock.Anything, "test").Return(testUser, nil).Once()

	session := api.NewAPISession(m, "test")

	_, err := session.User(ctx)
	assert.ErrorIs(t, err, failure)

	u, err := session.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUser, u)

	u, err = session.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUser, u)

	m.AssertNumberOfCalls(t, "GetUser", 2)
}

func TestAPISession_NoWorkspaces(t *testing.T) {
	t.Parallel()

	m := apimocks.NewMockAPI()
	m.On("GetWorkspaces", mock.Anything, "test").Return([]model.Workspace{}, nil)

	_, err := api.NewAPISession(m, "test").DefaultWorkspace(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestAPISession_CachedLookups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tag := model.Tag{NamedObject: model.NamedObject{ID: "t1", Name: "tea party"}}
	task := model.Task{NamedObject: model.NamedObject{ID: "k1", Name: "drink me"}}

	m := newMockAPI()
	m.On("GetTags", mock.Anything, "test", testWorkspace).Return([]model.Tag{tag}, nil).Once()
	m.On("GetTasks", mock.Anything, "test", testWorkspace, testProject).Return([]model.Task{task}, nil).Once()

	session := api.NewAPISession(m, "test")

	for i := 0; i < 3; i++ {
		users, err := session.Users(ctx, testWorkspace)
		require.NoError(t, err)
		assert.Equal(t, []model.User{testUser}, users)

		projects, err := session.Projects(ctx, testWorkspace)
		require.NoError(t, err)
		assert.Equal(t, []model.Project{testProject}, projects)

		tags, err := session.Tags(ctx, testWorkspace)
		require.NoError(t, err)
		assert.Equal(t, []model.Tag{tag}, tags)

		tasks, err := session.Tasks(ctx, testWorkspace, testProject)
		require.NoError(t, err)
		assert.Equal(t, []model.Task{task}, tasks)
	}

	m.AssertNumberOfCalls(t, "GetUsers", 1)
	m.AssertNumberOfCalls(t, "GetProjects", 1)
	m.AssertNumberOfCalls(t, "GetTags", 1)
	m.AssertNumberOfCalls(t, "GetTasks", 1)
}

func TestAPISession_ConcurrentLookups(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	m := apimocks.NewMockAPI()
	m.On("GetUser", mock.Anything, "test").Run(func(mock.Arguments) { <-release }).Return(testUser, nil).Once()

	session := api.NewAPISession(m, "test")

	const workers = 8
	var wg sync.WaitGroup
	results := make([]model.User, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = session.User(context.Background())
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, testUser, results[i])
	}
	m.AssertNumberOfCalls(t, "GetUser", 1)
}

// TestAPISession_WithClockifyAPI 실제 ClockifyAPI와 MockFetcher를 연결하여 세션 전체 흐름을 검증합니다.
func TestAPISession_WithClockifyAPI(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	f := mocks.NewMockFetcher()
	session := api.NewAPISession(api.NewClockifyAPI(api.NewAPIServer(f, testBaseURL)), "mock_key")

	f.SetResponse(fixtures.GetWorkspaces)
	ws, err := session.DefaultWorkspace(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5e5b8b0a95ae537fbde06e2f", ws.ID)

	f.SetResponse(fixtures.GetUser)
	_, err = session.User(ctx)
	require.NoError(t, err)

	require.NoError(t, f.SetResponses(fixtures.PostTimeEntry, fixtures.CurrentlyRunningEntryNotFound))

	entry, err := session.AddTimeEntry(ctx, time.Date(2019, 10, 23, 17, 18, 58, 0, time.UTC), time.Time{}, "testing description", nil)
	require.NoError(t, err)
	assert.True(t, entry.Running())

	// PATCH 슬롯은 자신의 순서대로 POST_TIME_ENTRY, CURRENTLY_RUNNING_ENTRY_NOT_FOUND를 반환한다.
	stopped, err := session.StopTimer(ctx, time.Time{})
	require.NoError(t, err)
	require.NotNil(t, stopped)

	stopped, err = session.StopTimer(ctx, time.Time{})
	require.NoError(t, err)
	assert.Nil(t, stopped)

	assert.Equal(t, 2, f.CallCount(mocks.VerbGet), "워크스페이스와 사용자는 캐시되어야 합니다")
	assert.Equal(t, 1, f.CallCount(mocks.VerbPost))
	assert.Equal(t, 2, f.CallCount(mocks.VerbPatch))
}
