package utils

import (
	"testing"

	"github.com/hazadus/go-landscape/internal/data"
)

func TestFormatDurationFromSeconds(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		{7381, "02:03:01"},
		{92730, "25:45:30"},
	}

	for _, test := range tests {
		result := FormatDurationFromSeconds(test.seconds)
		if result != test.expected {
			t.Errorf("FormatDurationFromSeconds(%d) = %s; expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	a := data.NewTitledTrack("A")
	a.SetDuration(100)
	b := data.NewTitledTrack("B")
	b.SetDuration(25)

	if got := TotalDuration([]*data.Track{a, b}); got != 125 {
		t.Errorf("TotalDuration = %d; expected 125", got)
	}
	if got := TotalDuration(nil); got != 0 {
		t.Errorf("TotalDuration(nil) = %d; expected 0", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcde", 4, "a..."},
		{"длинное название", 10, "длинное..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%s, %d) = %s; expected %s", test.input, test.maxLen, result, test.expected)
		}
	}
}
