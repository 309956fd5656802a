package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 25, 12, 0, 0, 0, time.UTC)

func TestParseDateISOPassthrough(t *testing.T) {
	r := ParseDate("2025-06-25", testNow)
	iso, ok := r.ISO()
	require.True(t, ok)
	assert.Equal(t, "2025-06-25", iso)
}

func TestParseDateMonthDay(t *testing.T) {
	cases := map[string]string{
		"6/25":  "2025-06-25",
		"06/25": "2025-06-25",
		"12/3":  "2025-12-03",
	}
	for input, want := range cases {
		r := ParseDate(input, testNow)
		iso, ok := r.ISO()
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, iso, "input %q", input)
	}
}

func TestParseDateEmpty(t *testing.T) {
	assert.True(t, ParseDate("", testNow).Unset())
	assert.True(t, ParseDate("   ", testNow).Unset())
}

func TestParseDateRelativeKeywords(t *testing.T) {
	for _, input := range []string{"今日", "today", "TODAY"} {
		iso, ok := ParseDate(input, testNow).ISO()
		require.True(t, ok, "input %q", input)
		assert.Equal(t, "2025-06-25", iso, "input %q", input)
	}
	for _, input := range []string{"明日", "tomorrow"} {
		iso, ok := ParseDate(input, testNow).ISO()
		require.True(t, ok, "input %q", input)
		assert.Equal(t, "2025-06-26", iso, "input %q", input)
	}
}

func TestParseDateNextWeekIgnoresWeekday(t *testing.T) {
	// 「来週土曜日」でも一律 +7 日
	for _, input := range []string{"来週", "来週土曜日"} {
		iso, ok := ParseDate(input, testNow).ISO()
		require.True(t, ok, "input %q", input)
		assert.Equal(t, "2025-07-02", iso, "input %q", input)
	}
}

func TestParseDateUnrecognizedPassthrough(t *testing.T) {
	r := ParseDate("garbage", testNow)
	_, ok := r.ISO()
	assert.False(t, ok)
	assert.False(t, r.Unset())
	assert.Equal(t, "garbage", r.Raw())
	assert.False(t, IsValidISODate(r.Raw()))
}

func TestIsValidISODate(t *testing.T) {
	assert.True(t, IsValidISODate("2025-01-02"))
	assert.False(t, IsValidISODate("2025-1-2"))
	assert.False(t, IsValidISODate("garbage"))
}
