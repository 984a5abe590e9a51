package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, want: true},
		{name: "wrapped", err: fmt.Errorf("run golangci-lint: %w", exec.ErrNotFound), want: true},
		{name: "message only", err: errors.New("executable file not found in $PATH"), want: true},
		{name: "no such file", err: errors.New("fork/exec ./x: no such file or directory"), want: true},
		{name: "other", err: errors.New("exit status 1"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCommandNotFound(tt.err))
		})
	}
}

func TestLdflags(t *testing.T) {
	built := time.Date(2024, 3, 1, 10, 15, 3, 0, time.UTC)
	got := Ldflags("v1.2.0", "abc1234", built)

	assert.Contains(t, got, "-X 'github.com/dkoosis/innostat/internal/version.Version=v1.2.0'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/innostat/internal/version.CommitHash=abc1234'")
	assert.Contains(t, got, "BuildDate=2024-03-01T10:15:03Z'")
	assert.True(t, strings.HasPrefix(got, "-s -w "))
}

func TestUnformatted(t *testing.T) {
	assert.Empty(t, unformatted(""))
	assert.Equal(t, []string{"cmd/innostat/main.go"},
		unformatted("cmd/innostat/main.go\n_examples/x/y.go\n\n"))
}

func TestCentered(t *testing.T) {
	assert.Equal(t, "  ab", centered("ab", 6))
	assert.Equal(t, "toolong", centered("toolong", 3))
}
