package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Ryanditko/Prova-RPA/internal/config"
	"github.com/Ryanditko/Prova-RPA/internal/store"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"configuration error", config.ErrMissingAPIKey, 2},
		{"wrapped configuration error", fmt.Errorf("loading config: %w", config.ErrMissingAPIKey), 2},
		{"storage error", &store.Error{Op: "inserting reading", Err: errors.New("disk full")}, 3},
		{"unexpected error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("%s: exitCode = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.input); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
