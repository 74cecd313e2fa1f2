// Package model Clockify API가 주고받는 객체를 표현합니다.
//
// 패키지에서 사용하는 필드만 모델링하며, 나머지 필드는 파싱 시 무시합니다.
// 각 Parse 함수는 API 응답 본문을 그대로 받아 필수 필드가 없으면 ParsingFailed 에러를 반환합니다.
package model

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ObjectID ID만으로 식별되는 API 객체입니다. (시간 기록의 사용자, 프로젝트 참조 등)
type ObjectID struct {
	ID string
}

func (o ObjectID) String() string {
	return fmt.Sprintf("ObjectID(%s)", o.ID)
}

// NamedObject ID와 이름을 가진 API 객체입니다.
type NamedObject struct {
	ID   string
	Name string
}

func (o NamedObject) String() string {
	return fmt.Sprintf("(%s) '%s'", o.ID, o.Name)
}

func parseNamedObject(obj gjson.Result) (NamedObject, error) {
	id, err := requiredString(obj, "id")
	if err != nil {
		return NamedObject{}, err
	}
	name, err := requiredString(obj, "name")
	if err != nil {
		return NamedObject{}, err
	}
	return NamedObject{ID: id, Name: name}, nil
}

// HourlyRate 시간당 요금입니다. Amount는 통화의 최소 단위(센트 등)입니다.
type HourlyRate struct {
	Amount   int64
	Currency string
}

func (r HourlyRate) String() string {
	return fmt.Sprintf("%d %s", r.Amount, r.Currency)
}

// parseHourlyRate obj의 hourlyRate 필드를 파싱합니다.
func parseHourlyRate(obj gjson.Result) (HourlyRate, error) {
	rate, err := requiredField(obj, "hourlyRate")
	if err != nil {
		return HourlyRate{}, err
	}
	amount, err := requiredField(rate, "amount")
	if err != nil {
		return HourlyRate{}, err
	}
	currency, err := requiredString(rate, "currency")
	if err != nil {
		return HourlyRate{}, err
	}
	return HourlyRate{Amount: amount.Int(), Currency: currency}, nil
}

// parseMembershipRates memberships 배열에서 hourlyRate가 설정된 항목만 골라 keyField 값을 키로 하는 맵을 만듭니다.
func parseMembershipRates(obj gjson.Result, keyField string) (map[string]HourlyRate, error) {
	memberships, err := requiredField(obj, "memberships")
	if err != nil {
		return nil, err
	}

	rates := make(map[string]HourlyRate)
	for _, m := range memberships.Array() {
		if r := m.Get("hourlyRate"); !r.Exists() || r.Type == gjson.Null {
			continue
		}

		key, err := requiredString(m, keyField)
		if err != nil {
			return nil, err
		}
		rate, err := parseHourlyRate(m)
		if err != nil {
			return nil, err
		}
		rates[key] = rate
	}

	return rates, nil
}

// Workspace 워크스페이스와 기본 시간당 요금입니다.
type Workspace struct {
	NamedObject
	HourlyRate HourlyRate
}

func (w Workspace) String() string {
	return "Workspace " + w.NamedObject.String()
}

func parseWorkspace(obj gjson.Result) (Workspace, error) {
	named, err := parseNamedObject(obj)
	if err != nil {
		return Workspace{}, err
	}
	rate, err := parseHourlyRate(obj)
	if err != nil {
		return Workspace{}, err
	}
	return Workspace{NamedObject: named, HourlyRate: rate}, nil
}

// ParseWorkspace 워크스페이스 JSON 객체를 파싱합니다.
func ParseWorkspace(data []byte) (Workspace, error) {
	return parseOne(data, parseWorkspace)
}

// ParseWorkspaces 워크스페이스 JSON 배열을 파싱합니다.
func ParseWorkspaces(data []byte) ([]Workspace, error) {
	return parseList(data, parseWorkspace)
}

// Client 프로젝트의 고객입니다.
type Client struct {
	NamedObject
}

func (c Client) String() string {
	return "Client " + c.NamedObject.String()
}

func parseClient(obj gjson.Result) (Client, error) {
	named, err := parseNamedObject(obj)
	return Client{NamedObject: named}, err
}

// ParseClients 고객 JSON 배열을 파싱합니다.
func ParseClients(data []byte) ([]Client, error) {
	return parseList(data, parseClient)
}

// Task 프로젝트에 속한 태스크입니다.
type Task struct {
	NamedObject
}

func (t Task) String() string {
	return "Task " + t.NamedObject.String()
}

func parseTask(obj gjson.Result) (Task, error) {
	named, err := parseNamedObject(obj)
	return Task{NamedObject: named}, err
}

// ParseTasks 태스크 JSON 배열을 파싱합니다.
func ParseTasks(data []byte) ([]Task, error) {
	return parseList(data, parseTask)
}

// Tag 시간 기록에 붙이는 태그입니다.
type Tag struct {
	NamedObject
}

func (t Tag) String() string {
	return "Tag " + t.NamedObject.String()
}

func parseTag(obj gjson.Result) (Tag, error) {
	named, err := parseNamedObject(obj)
	return Tag{NamedObject: named}, err
}

// ParseTags 태그 JSON 배열을 파싱합니다.
func ParseTags(data []byte) ([]Tag, error) {
	return parseList(data, parseTag)
}
