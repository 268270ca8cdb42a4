package logger

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// capture redirects stdout and stderr while fn runs.
func capture(t *testing.T, fn func()) (string, string) {
	t.Helper()
	color.NoColor = true

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, _ := os.Pipe()
	errR, errW, _ := os.Pipe()
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origOut, origErr

	var stdout, stderr bytes.Buffer
	_, _ = io.Copy(&stdout, outR)
	_, _ = io.Copy(&stderr, errR)
	return stdout.String(), stderr.String()
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name       string
		logger     Logger
		wantInfo   bool
		wantDebug  bool
		wantWarn   bool
		wantErrorf bool
	}{
		{"Quiet", Logger{}, false, false, false, false},
		{"Verbose", Logger{Verbose: true}, true, false, true, false},
		{"Debug", Logger{Debug: true}, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := capture(t, func() {
				tt.logger.Infof("info %d", 1)
				tt.logger.Debugf("debug %d", 2)
				tt.logger.Warnf("warn %d", 3)
				tt.logger.Errorf("error %d", 4)
				tt.logger.WarnfAlways("always %d", 5)
			})

			if got := strings.Contains(stdout, "[info] info 1"); got != tt.wantInfo {
				t.Errorf("info shown = %v, want %v (stdout: %q)", got, tt.wantInfo, stdout)
			}
			if got := strings.Contains(stdout, "[debug] debug 2"); got != tt.wantDebug {
				t.Errorf("debug shown = %v, want %v (stdout: %q)", got, tt.wantDebug, stdout)
			}
			if got := strings.Contains(stderr, "[warn] warn 3"); got != tt.wantWarn {
				t.Errorf("warn shown = %v, want %v (stderr: %q)", got, tt.wantWarn, stderr)
			}
			if got := strings.Contains(stderr, "[error] error 4"); got != tt.wantErrorf {
				t.Errorf("error shown = %v, want %v (stderr: %q)", got, tt.wantErrorf, stderr)
			}
			if !strings.Contains(stderr, "[warn] always 5") {
				t.Errorf("WarnfAlways should always be shown, stderr: %q", stderr)
			}
		})
	}
}

func TestErrorfAndReturnWraps(t *testing.T) {
	sentinel := errors.New("sentinel")
	var err error
	capture(t, func() {
		err = Logger{}.ErrorfAndReturn("loading config: %w", sentinel)
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got: %v", err)
	}
	if err.Error() != "loading config: sentinel" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
