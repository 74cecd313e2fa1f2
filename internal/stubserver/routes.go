package stubserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher/mocks"
	"github.com/darkkaiser/clockify-client/internal/clockify/fixtures"
)

const (
	apiKeyHeader = "X-Api-Key"

	contentTypeJSON = "application/json; charset=utf-8"
)

// emptyList 픽스처가 없는 목록 조회에 사용하는 빈 배열 응답입니다.
var emptyList = mocks.MockResponse{Body: "[]", StatusCode: http.StatusOK}

func registerRoutes(e *echo.Echo) {
	e.GET("/fixtures", listFixtures)
	e.GET("/fixtures/:name", getFixture)

	v1 := e.Group(BasePath, requireAPIKey)

	v1.GET("/workspaces", serve(fixtures.GetWorkspaces))
	v1.GET("/user", serve(fixtures.GetUser))
	v1.GET("/workspaces/:workspaceId/users", serve(fixtures.GetUsers))
	v1.GET("/workspaces/:workspaceId/projects", serve(fixtures.GetProjects))
	v1.GET("/workspaces/:workspaceId/projects/:projectId/tasks", serve(fixtures.GetTasks))
	v1.GET("/workspaces/:workspaceId/clients", serve(emptyList))
	v1.GET("/workspaces/:workspaceId/tags", serve(emptyList))

	v1.POST("/workspaces/:workspaceId/time-entries", serve(fixtures.PostTimeEntry))
	v1.PUT("/workspaces/:workspaceId/time-entries/:id", serve(mocks.MockResponse{
		Body:       fixtures.PostTimeEntry.Body,
		StatusCode: http.StatusOK,
	}))
	v1.PATCH("/workspaces/:workspaceId/user/:userId/time-entries", serve(fixtures.CurrentlyRunningEntryNotFound))
}

func writeFixture(c echo.Context, r mocks.MockResponse) error {
	return c.Blob(r.StatusCode, contentTypeJSON, []byte(r.Body))
}

func serve(r mocks.MockResponse) echo.HandlerFunc {
	return func(c echo.Context) error {
		return writeFixture(c, r)
	}
}

// requireAPIKey X-Api-Key 헤더가 없는 요청에 AUTH_ERROR 픽스처로 응답합니다.
func requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(apiKeyHeader) == "" {
			return writeFixture(c, fixtures.AuthError)
		}
		return next(c)
	}
}

func listFixtures(c echo.Context) error {
	return c.JSON(http.StatusOK, fixtures.Names())
}

// getFixture 이름에 해당하는 픽스처를 기록된 상태 코드와 함께 그대로 반환합니다.
func getFixture(c echo.Context) error {
	r, ok := fixtures.Lookup(c.Param("name"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{
			"message": "fixture not found: " + c.Param("name"),
			"code":    http.StatusNotFound,
		})
	}
	return writeFixture(c, r)
}
