package model_test

import (
	"testing"

	"github.com/darkkaiser/clockify-client/internal/clockify/model"
	"github.com/stretchr/testify/assert"
)

func TestHourlyRate_Resolution(t *testing.T) {
	t.Parallel()

	usd := model.HourlyRate{Amount: 100, Currency: "USD"}
	gbp := model.HourlyRate{Amount: 99, Currency: "GBP"}
	rur := model.HourlyRate{Amount: 98, Currency: "RUR"}

	ratesFor123 := map[string]model.HourlyRate{"123": usd}

	lenin := model.User{NamedObject: model.NamedObject{ID: "123", Name: "Lenin"}, Email: "lenin@mail.ru", HourlyRates: ratesFor123}
	stalin := model.User{NamedObject: model.NamedObject{ID: "357", Name: "Stalin"}, Email: "stalin@mail.ru", HourlyRates: ratesFor123}
	workspace := model.Workspace{NamedObject: model.NamedObject{ID: "789", Name: "Russia'1917"}, HourlyRate: rur}

	project := model.Project{NamedObject: model.NamedObject{ID: "456", Name: "Revolution"}, ClientID: "123", HourlyRates: ratesFor123}

	// 사용자에게 프로젝트/워크스페이스 요금이 없고 프로젝트 자체 요금도 없으면 워크스페이스 요금
	assert.Equal(t, int64(98), lenin.HourlyRate(workspace, project).Amount)
	// 프로젝트에 해당 사용자 요금이 있으면 그 요금
	assert.Equal(t, "USD", project.HourlyRate(workspace, lenin).Currency)

	project = model.Project{NamedObject: model.NamedObject{ID: "456", Name: "Revolution"}, ClientID: "123", HourlyRates: map[string]model.HourlyRate{"456": gbp}}
	// 사용자 요금이 없으면 프로젝트 자체 요금
	assert.Equal(t, "GBP", project.HourlyRate(workspace, stalin).Currency)
}

func TestUser_HourlyRate_Priority(t *testing.T) {
	t.Parallel()

	workspace := model.Workspace{NamedObject: model.NamedObject{ID: "ws"}, HourlyRate: model.HourlyRate{Amount: 1, Currency: "WS"}}
	project := model.Project{NamedObject: model.NamedObject{ID: "p"}, HourlyRates: map[string]model.HourlyRate{}}

	tests := []struct {
		name         string
		userRates    map[string]model.HourlyRate
		projectRates map[string]model.HourlyRate
		expected     string
	}{
		{name: "사용자-프로젝트 요금", userRates: map[string]model.HourlyRate{"p": {Currency: "UP"}, "ws": {Currency: "UW"}}, projectRates: map[string]model.HourlyRate{"p": {Currency: "PP"}}, expected: "UP"},
		{name: "프로젝트 자체 요금", userRates: map[string]model.HourlyRate{"ws": {Currency: "UW"}}, projectRates: map[string]model.HourlyRate{"p": {Currency: "PP"}}, expected: "PP"},
		{name: "사용자-워크스페이스 요금", userRates: map[string]model.HourlyRate{"ws": {Currency: "UW"}}, expected: "UW"},
		{name: "워크스페이스 기본 요금", expected: "WS"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := model.User{NamedObject: model.NamedObject{ID: "u"}, HourlyRates: tt.userRates}
			p := project
			p.HourlyRates = tt.projectRates

			assert.Equal(t, tt.expected, u.HourlyRate(workspace, p).Currency)
		})
	}
}

func TestProject_HourlyRate_Priority(t *testing.T) {
	t.Parallel()

	workspace := model.Workspace{NamedObject: model.NamedObject{ID: "ws"}, HourlyRate: model.HourlyRate{Currency: "WS"}}

	tests := []struct {
		name         string
		userRates    map[string]model.HourlyRate
		projectRates map[string]model.HourlyRate
		expected     string
	}{
		{name: "프로젝트-사용자 요금", userRates: map[string]model.HourlyRate{"ws": {Currency: "UW"}}, projectRates: map[string]model.HourlyRate{"u": {Currency: "PU"}, "p": {Currency: "PP"}}, expected: "PU"},
		{name: "프로젝트 자체 요금", userRates: map[string]model.HourlyRate{"ws": {Currency: "UW"}}, projectRates: map[string]model.HourlyRate{"p": {Currency: "PP"}}, expected: "PP"},
		{name: "사용자-워크스페이스 요금", userRates: map[string]model.HourlyRate{"ws": {Currency: "UW"}}, expected: "UW"},
		{name: "워크스페이스 기본 요금", expected: "WS"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := model.User{NamedObject: model.NamedObject{ID: "u"}, HourlyRates: tt.userRates}
			p := model.Project{NamedObject: model.NamedObject{ID: "p"}, HourlyRates: tt.projectRates}

			assert.Equal(t, tt.expected, p.HourlyRate(workspace, u).Currency)
		})
	}
}
