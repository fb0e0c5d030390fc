package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/stretchr/testify/assert"
)

func TestUnitExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"success": {
			want: exitOK,
		},
		"unsupported": {
			err:  fmt.Errorf("can't run: %w", &platform.UnsupportedError{Marketplace: "apteka_mos", Kind: "prices"}),
			want: exitUnsupported,
		},
		"transport": {
			err:  fmt.Errorf("can't search: %w", platform.ErrTransport),
			want: exitFatal,
		},
		"usage": {
			err:  usageError{fmt.Errorf("unknown leg")},
			want: exitFatal,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestUnitRun(t *testing.T) {
	tests := map[string]struct {
		args       []string
		wantCode   int
		wantStderr string
	}{
		"unsupported record kind": {
			args:       []string{"prices", "-d", "2023-01-01T03:00:00", "-m", "apteka_mos", "-o", "77"},
			wantCode:   exitUnsupported,
			wantStderr: "record kind is not supported",
		},
		"unknown marketplace": {
			args:       []string{"stocks", "-d", "2023-01-01T03:00:00", "-m", "unknown", "-o", "77"},
			wantCode:   exitFatal,
			wantStderr: "unknown",
		},
		"organization and store": {
			args:       []string{"stocks", "-d", "2023-01-01T03:00:00", "-m", "aloe", "-o", "77", "-s", "store"},
			wantCode:   exitFatal,
			wantStderr: "none of the others can be",
		},
		"no organization nor store": {
			args:       []string{"stocks", "-d", "2023-01-01T03:00:00", "-m", "aloe"},
			wantCode:   exitFatal,
			wantStderr: "at least one of the flags",
		},
		"no datetime": {
			args:       []string{"stocks", "-m", "aloe", "-o", "77"},
			wantCode:   exitFatal,
			wantStderr: "datetime",
		},
		"invalid datetime": {
			args:       []string{"stocks", "-d", "yesterday", "-m", "aloe", "-o", "77"},
			wantCode:   exitFatal,
			wantStderr: "invalid arguments",
		},
		"unknown leg": {
			args:       []string{"stocks", "-d", "2023-01-01T03:00:00", "-m", "aloe", "-o", "77", "--legs", "wms"},
			wantCode:   exitFatal,
			wantStderr: "unknown leg",
		},
		"unreachable database": {
			args:       []string{"stocks", "-d", "2023-01-01T03:00:00", "-m", "aloe", "-o", "77"},
			wantCode:   exitFatal,
			wantStderr: transportHint,
		},
		"product of stores": {
			args:       []string{"stores", "-d", "2023-01-01T03:00:00", "-m", "aloe", "-o", "77", "-p", "1"},
			wantCode:   exitFatal,
			wantStderr: "unknown shorthand flag",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://reconciler@127.0.0.1:1/reconciler?sslmode=disable")
			t.Setenv("REPORT_DIR", t.TempDir())

			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr.String(), tt.wantStderr)
			assert.Empty(t, stdout.String())
		})
	}
}
