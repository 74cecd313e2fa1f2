// Package config 클라이언트와 스텁 서버의 설정을 로드합니다.
//
// 설정은 다음 순서로 적재되며, 뒤에 적재된 값이 앞의 값을 덮어씁니다.
//
//  1. 구조체 기본값 (newDefaultConfig)
//  2. JSON 설정 파일
//  3. 환경 변수 (접두사 CLOCKIFY_, 계층 구분자 __)
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "clockify-client"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: CLOCKIFY_CLOCKIFY__API_KEY -> clockify.api_key
	EnvPrefix = "CLOCKIFY_"

	DefaultBaseURL    = "https://api.clockify.me/api/v1"
	DefaultTimeout    = 30 * time.Second
	DefaultRateLimit  = 10.0
	DefaultRateBurst  = 10
	DefaultListenPort = 8088
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Clockify   ClockifyConfig   `json:"clockify"`
	StubServer StubServerConfig `json:"stub_server"`
}

// ClockifyConfig Clockify API 접속 설정
type ClockifyConfig struct {
	BaseURL   string        `json:"base_url" validate:"required,http_url"`
	APIKey    string        `json:"api_key"`
	Timeout   time.Duration `json:"timeout" validate:"gt=0"`
	RateLimit float64       `json:"rate_limit" validate:"gt=0"`
	RateBurst int           `json:"rate_burst" validate:"min=1"`
}

// StubServerConfig 픽스처를 응답하는 스텁 서버 설정
type StubServerConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`
}

func newDefaultConfig() *AppConfig {
	return &AppConfig{
		Debug: false,
		Clockify: ClockifyConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			RateLimit: DefaultRateLimit,
			RateBurst: DefaultRateBurst,
		},
		StubServer: StubServerConfig{
			ListenPort: DefaultListenPort,
		},
	}
}

// validate 설정 로드 직후 각 항목의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := checkStruct(validate, c.Clockify, "Clockify"); err != nil {
		return err
	}
	if err := checkStruct(validate, c.StubServer, "StubServer"); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 강제하지는 않지만 권장되는 설정 준수 여부를 진단하여 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return append(c.Clockify.VerifyRecommendations(), c.StubServer.VerifyRecommendations()...)
}

// VerifyRecommendations Clockify API를 호출하는 쪽(클라이언트)에서 확인해야 할 경고를 반환합니다.
func (c ClockifyConfig) VerifyRecommendations() []string {
	var warnings []string

	if strings.TrimSpace(c.APIKey) == "" {
		warnings = append(warnings, "Clockify API 키(clockify.api_key)가 설정되지 않았습니다. 실제 API 서버에 대한 요청은 인증 오류(401)로 실패합니다")
	}

	return warnings
}

// VerifyRecommendations 스텁 서버 구동 시 확인해야 할 경고를 반환합니다.
func (c StubServerConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// Load 기본 설정 파일을 읽어 설정을 로드합니다. 기본 설정 파일이 없으면 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	if _, err := os.Stat(DefaultFilename); err != nil {
		return LoadWithFile("")
	}
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
// filename이 빈 문자열이면 파일 단계를 건너뜁니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if os.IsNotExist(err) {
				return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
			}
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			ErrorUnused:      true, // 구조체에 없는 키가 있으면 에러
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	unmarshalConf.DecoderConfig.Result = &appConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키로 변환합니다.
// 접두사를 제거하고 소문자로 바꾼 뒤, 이중 언더스코어(__)를 점(.)으로 바꿉니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
