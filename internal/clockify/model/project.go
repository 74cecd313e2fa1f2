package model

import (
	"github.com/tidwall/gjson"
)

// Project 워크스페이스의 프로젝트입니다.
//
// HourlyRates의 키는 프로젝트 ID(프로젝트 자체 요금) 또는 사용자 ID(멤버별 요금)입니다.
type Project struct {
	NamedObject
	ClientID    string
	HourlyRates map[string]HourlyRate
}

func (p Project) String() string {
	return "Project " + p.NamedObject.String() + " for client " + p.ClientID
}

// HourlyRate 사용자가 이 프로젝트에서 작업할 때 적용되는 시간당 요금을 반환합니다.
//
// 우선순위:
//  1. 프로젝트에 설정된 해당 사용자 요금
//  2. 프로젝트 자체 요금
//  3. 사용자에게 설정된 워크스페이스 요금
//  4. 워크스페이스 기본 요금
func (p Project) HourlyRate(ws Workspace, u User) HourlyRate {
	if r, ok := p.HourlyRates[u.ID]; ok {
		return r
	}
	if r, ok := p.HourlyRates[p.ID]; ok {
		return r
	}
	if r, ok := u.HourlyRates[ws.ID]; ok {
		return r
	}
	return ws.HourlyRate
}

func parseProject(obj gjson.Result) (Project, error) {
	named, err := parseNamedObject(obj)
	if err != nil {
		return Project{}, err
	}
	clientID, err := requiredString(obj, "clientId")
	if err != nil {
		return Project{}, err
	}
	own, err := parseHourlyRate(obj)
	if err != nil {
		return Project{}, err
	}
	rates, err := parseMembershipRates(obj, "userId")
	if err != nil {
		return Project{}, err
	}
	rates[named.ID] = own

	return Project{NamedObject: named, ClientID: clientID, HourlyRates: rates}, nil
}

// ParseProject 프로젝트 JSON 객체를 파싱합니다.
func ParseProject(data []byte) (Project, error) {
	return parseOne(data, parseProject)
}

// ParseProjects 프로젝트 JSON 배열을 파싱합니다.
func ParseProjects(data []byte) ([]Project, error) {
	return parseList(data, parseProject)
}
