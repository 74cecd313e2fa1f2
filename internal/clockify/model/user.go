package model

import (
	"github.com/tidwall/gjson"
)

// User 워크스페이스 사용자입니다.
//
// HourlyRates는 사용자에게 개별 설정된 시간당 요금으로, 키는 요금이 적용되는
// 대상(워크스페이스 또는 프로젝트)의 ID입니다.
type User struct {
	NamedObject
	Email       string
	HourlyRates map[string]HourlyRate
}

func (u User) String() string {
	return "User " + u.NamedObject.String() + " email:" + u.Email
}

// HourlyRate 프로젝트 작업에 적용되는 사용자의 시간당 요금을 반환합니다.
//
// 우선순위:
//  1. 사용자에게 설정된 해당 프로젝트 요금
//  2. 프로젝트 자체 요금
//  3. 사용자에게 설정된 워크스페이스 요금
//  4. 워크스페이스 기본 요금
func (u User) HourlyRate(ws Workspace, p Project) HourlyRate {
	if r, ok := u.HourlyRates[p.ID]; ok {
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

func parseUser(obj gjson.Result) (User, error) {
	named, err := parseNamedObject(obj)
	if err != nil {
		return User{}, err
	}
	email, err := requiredString(obj, "email")
	if err != nil {
		return User{}, err
	}
	rates, err := parseMembershipRates(obj, "targetId")
	if err != nil {
		return User{}, err
	}
	return User{NamedObject: named, Email: email, HourlyRates: rates}, nil
}

// ParseUser 사용자 JSON 객체를 파싱합니다.
func ParseUser(data []byte) (User, error) {
	return parseOne(data, parseUser)
}

// ParseUsers 사용자 JSON 배열을 파싱합니다.
func ParseUsers(data []byte) ([]User, error) {
	return parseList(data, parseUser)
}
