package model

import (
	"strings"
	"time"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

// DatetimeLayout Clockify API가 주고받는 날짜/시간 문자열 형식입니다. 항상 UTC로 표현됩니다.
const DatetimeLayout = "2006-01-02T15:04:05Z"

// naiveLayouts 시간대 정보가 없는 날짜/시간 문자열의 형식 목록입니다.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDatetime t를 UTC로 변환하여 Clockify 형식의 문자열로 반환합니다.
func FormatDatetime(t time.Time) string {
	return t.UTC().Format(DatetimeLayout)
}

// ParseDatetime 날짜/시간 문자열을 파싱합니다.
// 시간대 정보가 없는 문자열은 로컬 시간대(time.Local)로 해석합니다.
func ParseDatetime(s string) (time.Time, error) {
	return ParseDatetimeInLocation(s, time.Local)
}

// ParseDatetimeInLocation 날짜/시간 문자열을 파싱합니다.
//
// "Z" 또는 "+09:00" 같은 시간대 정보가 있으면 그대로 사용하고, 없으면 loc 시간대로 해석합니다.
//
//	ParseDatetimeInLocation("2018-06-12T14:01:41+00:00", loc) // 14:01:41 UTC
//	ParseDatetimeInLocation("2018-06-12T14:01:41", loc)       // 14:01:41 loc
func ParseDatetimeInLocation(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	if loc == nil {
		loc = time.Local
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, apperrors.Newf(apperrors.ParsingFailed, "날짜/시간 문자열(%q)을 파싱할 수 없습니다", s)
}
