package log

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetForTest 패키지 전역 상태와 logrus 전역 설정을 초기화합니다.
func resetForTest() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "abcd***"},
		{"abcdefghijkl", "abcd***"},
		{"XkZ9-api-key-1234567", "XkZ9***4567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaskSensitiveData(tt.input), "input: %q", tt.input)
	}
}

func TestWithComponent(t *testing.T) {
	resetForTest()
	defer resetForTest()

	hook := test.NewGlobal()

	WithComponent("clockify.api").Info("hello")
	WithComponentAndFields("clockify.fetcher", Fields{"method": "GET"}).Warn("slow")

	require.Len(t, hook.AllEntries(), 2)

	first := hook.AllEntries()[0]
	assert.Equal(t, "clockify.api", first.Data["component"])
	assert.Equal(t, "hello", first.Message)

	second := hook.LastEntry()
	assert.Equal(t, "clockify.fetcher", second.Data["component"])
	assert.Equal(t, "GET", second.Data["method"])
	assert.Equal(t, WarnLevel, second.Level)
}

func TestWithComponentAndFields_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	fields := Fields{"a": 1}
	entry := WithComponentAndFields("x", fields)

	assert.NotContains(t, fields, "component")
	assert.Equal(t, "x", entry.Data["component"])
}

func TestSetDebugMode(t *testing.T) {
	resetForTest()
	defer resetForTest()

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())
}

func TestStandardLogger(t *testing.T) {
	resetForTest()
	defer resetForTest()

	var buf bytes.Buffer
	StandardLogger().SetOutput(&buf)
	StandardLogger().Info("standard")

	assert.Contains(t, buf.String(), "standard")
}
