package backend

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/bwdash/internal/config"
)

func execBackend(t *testing.T, ctx context.Context, args ...string) (stdout string, err error) {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(ctx)
	return outBuf.String(), err
}

func TestServe_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout, err := execBackend(t, ctx, "serve", "--addr", "127.0.0.1:0", "--step", "1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Serving synthetic bandwidth on http://127.0.0.1:") {
		t.Errorf("expected listen announcement, got: %q", stdout)
	}
	if !strings.Contains(stdout, "step 1m0s") {
		t.Errorf("expected step in announcement, got: %q", stdout)
	}
}

func TestServe_RejectsTinyStep(t *testing.T) {
	_, err := execBackend(t, context.Background(), "serve", "--step", "10ms")
	if err == nil || !strings.Contains(err.Error(), "--step must be at least 1s") {
		t.Fatalf("expected step error, got %v", err)
	}
}

func TestServe_ListenFailure(t *testing.T) {
	_, err := execBackend(t, context.Background(), "serve", "--addr", "256.0.0.1:99999")
	if err == nil || !strings.Contains(err.Error(), "failed to listen") {
		t.Fatalf("expected listen error, got %v", err)
	}
}
