package model

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"
)

// descriptionDisplayLength String()에 표시되는 설명의 최대 글자 수입니다.
const descriptionDisplayLength = 30

// TimeEntry 시간 기록입니다. End가 zero value이면 타이머가 실행 중인 기록입니다.
type TimeEntry struct {
	ID          string
	Start       time.Time
	End         time.Time
	UserID      string
	Description string
	ProjectID   string
	TaskID      string
	TagIDs      []string
}

// Running 타이머가 실행 중인(종료 시각이 없는) 기록인지 여부를 반환합니다.
func (e TimeEntry) Running() bool {
	return e.End.IsZero()
}

func (e TimeEntry) String() string {
	return fmt.Sprintf("TimeEntry (%s) - '%s'", e.ID, truncate(e.Description, descriptionDisplayLength))
}

// RequestBody API 요청 본문으로 전송할 필드 맵을 반환합니다. 값이 비어 있는 필드는 포함하지 않습니다.
func (e TimeEntry) RequestBody() map[string]any {
	body := make(map[string]any)

	putIfNotEmpty := func(key, value string) {
		if value != "" {
			body[key] = value
		}
	}

	putIfNotEmpty("id", e.ID)
	if !e.Start.IsZero() {
		body["start"] = FormatDatetime(e.Start)
	}
	if !e.End.IsZero() {
		body["end"] = FormatDatetime(e.End)
	}
	putIfNotEmpty("description", e.Description)
	putIfNotEmpty("userId", e.UserID)
	putIfNotEmpty("projectId", e.ProjectID)
	putIfNotEmpty("taskId", e.TaskID)
	if len(e.TagIDs) > 0 {
		body["tagIds"] = append([]string(nil), e.TagIDs...)
	}

	return body
}

// truncate s가 length 글자보다 길면 (length-3) 글자와 "..."으로 줄입니다.
// 조합형 문자가 중간에서 잘리지 않도록 NFC로 정규화한 뒤 글자 수를 셉니다.
func truncate(s string, length int) string {
	runes := []rune(norm.NFC.String(s))
	if len(runes) <= length {
		return string(runes)
	}
	return string(runes[:length-3]) + "..."
}

func parseDatetimeField(obj gjson.Result, key string) (time.Time, error) {
	s := optionalString(obj, key)
	if s == "" {
		return time.Time{}, nil
	}
	return ParseDatetime(s)
}

func parseTimeEntry(obj gjson.Result) (TimeEntry, error) {
	interval, err := requiredField(obj, "timeInterval")
	if err != nil {
		return TimeEntry{}, err
	}
	id, err := requiredString(obj, "id")
	if err != nil {
		return TimeEntry{}, err
	}
	if _, err := requiredField(interval, "start"); err != nil {
		return TimeEntry{}, err
	}
	start, err := parseDatetimeField(interval, "start")
	if err != nil {
		return TimeEntry{}, err
	}
	end, err := parseDatetimeField(interval, "end")
	if err != nil {
		return TimeEntry{}, err
	}
	userID, err := requiredString(obj, "userId")
	if err != nil {
		return TimeEntry{}, err
	}

	var tagIDs []string
	for _, t := range obj.Get("tagIds").Array() {
		tagIDs = append(tagIDs, t.String())
	}

	return TimeEntry{
		ID:          id,
		Start:       start,
		End:         end,
		UserID:      userID,
		Description: optionalString(obj, "description"),
		ProjectID:   optionalString(obj, "projectId"),
		TaskID:      optionalString(obj, "taskId"),
		TagIDs:      tagIDs,
	}, nil
}

// ParseTimeEntry 시간 기록 JSON 객체를 파싱합니다.
func ParseTimeEntry(data []byte) (TimeEntry, error) {
	return parseOne(data, parseTimeEntry)
}

// ParseTimeEntries 시간 기록 JSON 배열을 파싱합니다.
func ParseTimeEntries(data []byte) ([]TimeEntry, error) {
	return parseList(data, parseTimeEntry)
}
