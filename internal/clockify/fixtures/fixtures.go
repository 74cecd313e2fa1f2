// Package fixtures 실제 Clockify API에서 녹화한 응답 샘플을 제공합니다.
//
// 각 응답 본문은 payloads 디렉토리의 JSON 파일을 그대로 임베드한 것이며, 실제 API 응답과
// 바이트 단위로 동일합니다. API 클라이언트 테스트는 이 값을 mocks.MockFetcher에 설정하여
// 운영 환경과 같은 방식으로 응답을 파싱하는지 검증합니다.
package fixtures

import (
	_ "embed"
	"maps"
	"net/http"
	"slices"

	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher/mocks"
	"github.com/iancoleman/strcase"
)

var (
	//go:embed payloads/auth_error.json
	authErrorJSON string

	//go:embed payloads/currently_running_entry_not_found.json
	currentlyRunningEntryNotFoundJSON string

	//go:embed payloads/get_workspaces.json
	getWorkspacesJSON string

	//go:embed payloads/get_user.json
	getUserJSON string

	//go:embed payloads/get_users.json
	getUsersJSON string

	//go:embed payloads/get_projects.json
	getProjectsJSON string

	//go:embed payloads/get_tasks.json
	getTasksJSON string

	//go:embed payloads/post_time_entry.json
	postTimeEntryJSON string
)

var (
	// AuthError API 키가 없거나 잘못된 경우의 응답 (401)
	AuthError = mocks.MockResponse{Body: authErrorJSON, StatusCode: http.StatusUnauthorized}

	// CurrentlyRunningEntryNotFound 실행 중인 타이머가 없을 때 타이머 종료를 요청한 경우의 응답 (404)
	CurrentlyRunningEntryNotFound = mocks.MockResponse{Body: currentlyRunningEntryNotFoundJSON, StatusCode: http.StatusNotFound}

	// GetWorkspaces 워크스페이스 2개 목록 (200)
	GetWorkspaces = mocks.MockResponse{Body: getWorkspacesJSON, StatusCode: http.StatusOK}

	// GetUser API 키 소유자 정보 (200)
	GetUser = mocks.MockResponse{Body: getUserJSON, StatusCode: http.StatusOK}

	// GetUsers 워크스페이스 사용자 4명 목록 (200)
	GetUsers = mocks.MockResponse{Body: getUsersJSON, StatusCode: http.StatusOK}

	// GetProjects 프로젝트 2개 목록 (200)
	GetProjects = mocks.MockResponse{Body: getProjectsJSON, StatusCode: http.StatusOK}

	// GetTasks 태스크 2개 목록 (200)
	GetTasks = mocks.MockResponse{Body: getTasksJSON, StatusCode: http.StatusOK}

	// PostTimeEntry 생성된 시간 기록 (201)
	PostTimeEntry = mocks.MockResponse{Body: postTimeEntryJSON, StatusCode: http.StatusCreated}
)

// library 이름(SCREAMING_SNAKE_CASE)으로 조회하기 위한 응답 샘플 목록입니다.
var library = map[string]mocks.MockResponse{
	"AUTH_ERROR":                        AuthError,
	"CURRENTLY_RUNNING_ENTRY_NOT_FOUND": CurrentlyRunningEntryNotFound,
	"GET_WORKSPACES":                    GetWorkspaces,
	"GET_USER":                          GetUser,
	"GET_USERS":                         GetUsers,
	"GET_PROJECTS":                      GetProjects,
	"GET_TASKS":                         GetTasks,
	"POST_TIME_ENTRY":                   PostTimeEntry,
}

// Lookup 이름으로 응답 샘플을 조회합니다.
//
// 이름은 SCREAMING_SNAKE_CASE로 정규화되므로 "GET_WORKSPACES", "GetWorkspaces",
// "get-workspaces"는 모두 같은 응답을 가리킵니다.
func Lookup(name string) (mocks.MockResponse, bool) {
	r, ok := library[strcase.ToScreamingSnake(name)]
	return r, ok
}

// Names 등록된 응답 샘플 이름을 정렬하여 반환합니다.
func Names() []string {
	return slices.Sorted(maps.Keys(library))
}

// All 전체 응답 샘플의 복사본을 반환합니다.
func All() map[string]mocks.MockResponse {
	return maps.Clone(library)
}
