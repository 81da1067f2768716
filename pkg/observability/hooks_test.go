package observability

import (
	"context"
	"testing"
	"time"
)

type recordingCompileHooks struct {
	NoopCompileHooks
	starts    int
	completes int
}

func (h *recordingCompileHooks) OnCompileStart(context.Context, string) { h.starts++ }
func (h *recordingCompileHooks) OnCompileComplete(context.Context, string, time.Duration, error) {
	h.completes++
}

func TestSetCompileHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCompileHooks{}
	SetCompileHooks(rec)

	ctx := context.Background()
	Compile().OnCompileStart(ctx, "a.tex")
	Compile().OnCompileComplete(ctx, "a.tex", time.Second, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("recorded starts=%d completes=%d, want 1/1", rec.starts, rec.completes)
	}
}

func TestSetNilKeepsCurrentHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCompileHooks{}
	SetCompileHooks(rec)
	SetCompileHooks(nil)

	Compile().OnCompileStart(context.Background(), "a.tex")
	if rec.starts != 1 {
		t.Error("nil registration replaced the active hooks")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingCompileHooks{}
	SetCompileHooks(rec)
	Reset()

	Compile().OnCompileStart(context.Background(), "a.tex")
	if rec.starts != 0 {
		t.Error("Reset did not restore no-op hooks")
	}
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	// Must not panic.
	Compile().OnRasterizeStart(context.Background(), "a.pdf")
	Cache().OnCacheHit(context.Background(), "pdf")
	Cache().OnCacheSet(context.Background(), "pdf", 42)
}
