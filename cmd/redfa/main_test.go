package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyIfEpsilon(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#", ""},
		{"", ""},
		{"a#", "a#"},
		{"##", "##"},
		{"abb", "abb"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, emptyIfEpsilon(tt.input), "emptyIfEpsilon(%q)", tt.input)
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("bogus"))
}
