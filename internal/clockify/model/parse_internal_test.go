package model

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

func TestAbbreviate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"id": "1"}`, abbreviate(`{"id": "1"}`))
	assert.Equal(t, strings.Repeat("x", 120)+"...", abbreviate(strings.Repeat("x", 121)))

	// 3바이트 문자가 바이트 경계(120)에서 잘리지 않아야 한다.
	got := abbreviate(strings.Repeat("가", 121))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("가", 120)+"...", got)
}

func TestRequiredField_MultibyteRawIsValidUTF8(t *testing.T) {
	t.Parallel()

	raw := `{"description": "` + strings.Repeat("회의", 100) + `"}`

	_, err := ParseTimeEntry([]byte(raw))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	assert.True(t, utf8.ValidString(err.Error()))
}
