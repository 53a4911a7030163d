package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampRoundTrip(t *testing.T) {
	original := time.Date(2026, time.March, 7, 14, 32, 0, 0, time.Local)

	stamp := FormatStamp(original)
	assert.Equal(t, "2026-03-07-14-32", stamp)

	parsed, err := ParseStamp(stamp)
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}

func TestFormatStamp_TruncatesBelowMinute(t *testing.T) {
	moment := time.Date(2026, time.March, 7, 14, 32, 59, 999999999, time.Local)
	assert.Equal(t, "2026-03-07-14-32", FormatStamp(moment))
}

func TestParseStamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "03-07-14-32", "2026/03/07 14:32", "2026-13-07-14-32"} {
		_, err := ParseStamp(input)
		assert.Error(t, err, "input %q", input)
	}
}
