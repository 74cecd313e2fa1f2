package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

var validate = newValidator()

// newValidator 에러 메시지에 JSON 키 이름을 사용하는 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]

	switch firstErr.StructField() {
	case "BaseURL":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Clockify API 주소(base_url)는 http 또는 https URL이어야 합니다: '%v'", firstErr.Value()))
	case "Timeout":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 타임아웃(timeout)은 0보다 커야 합니다: '%v'", firstErr.Value()))
	case "RateLimit":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("초당 요청 수(rate_limit)는 0보다 커야 합니다: '%v'", firstErr.Value()))
	case "RateBurst":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("최대 버스트(rate_burst)는 1 이상이어야 합니다: '%v'", firstErr.Value()))
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "스텁 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}
