package model

import (
	"github.com/tidwall/gjson"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

// parseRoot API 응답 본문을 gjson.Result로 변환합니다. 유효한 JSON이 아니면 에러를 반환합니다.
func parseRoot(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, apperrors.New(apperrors.ParsingFailed, "응답 본문이 유효한 JSON 형식이 아닙니다")
	}
	return gjson.ParseBytes(data), nil
}

// requiredField obj에서 key 필드를 찾습니다. 필드가 없으면 키 이름을 포함한 에러를 반환합니다.
func requiredField(obj gjson.Result, key string) (gjson.Result, error) {
	if !obj.IsObject() {
		return gjson.Result{}, apperrors.Newf(apperrors.ParsingFailed, "'%s' 키를 찾을 대상이 JSON 객체가 아닙니다: %s", key, abbreviate(obj.Raw))
	}

	v := obj.Get(gjson.Escape(key))
	if !v.Exists() {
		return gjson.Result{}, apperrors.Newf(apperrors.ParsingFailed, "'%s' 키를 찾을 수 없습니다: %s", key, abbreviate(obj.Raw))
	}
	return v, nil
}

func requiredString(obj gjson.Result, key string) (string, error) {
	v, err := requiredField(obj, key)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// optionalString 필드가 없거나 null이면 빈 문자열을 반환합니다.
func optionalString(obj gjson.Result, key string) string {
	return obj.Get(gjson.Escape(key)).String()
}

// parseList 응답 본문의 JSON 배열 각 항목을 parse로 변환합니다.
func parseList[T any](data []byte, parse func(gjson.Result) (T, error)) ([]T, error) {
	root, err := parseRoot(data)
	if err != nil {
		return nil, err
	}
	if !root.IsArray() {
		return nil, apperrors.Newf(apperrors.ParsingFailed, "응답 본문이 JSON 배열이 아닙니다: %s", abbreviate(root.Raw))
	}

	items := root.Array()
	result := make([]T, 0, len(items))
	for i, item := range items {
		v, err := parse(item)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "%d번째 항목 파싱 실패", i)
		}
		result = append(result, v)
	}

	return result, nil
}

// parseOne 응답 본문의 JSON 객체 하나를 parse로 변환합니다.
func parseOne[T any](data []byte, parse func(gjson.Result) (T, error)) (T, error) {
	root, err := parseRoot(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return parse(root)
}

// abbreviate 에러 메시지에 포함할 JSON 원문을 적당한 길이로 자릅니다.
func abbreviate(raw string) string {
	const maxLen = 120

	runes := []rune(raw)
	if len(runes) <= maxLen {
		return raw
	}
	return string(runes[:maxLen]) + "..."
}
