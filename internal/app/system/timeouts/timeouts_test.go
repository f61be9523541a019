package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Backend: 3 * time.Second})
	got := Current()
	if got.Backend != 3*time.Second {
		t.Errorf("Backend = %v", got.Backend)
	}
	if got.Ping != DefaultPing || got.Read != DefaultRead || got.Save != DefaultSave {
		t.Errorf("unset fields changed: %+v", got)
	}

	Reset()
	if Backend() != DefaultBackend {
		t.Errorf("after Reset Backend = %v", Backend())
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "load lesson")
	<-ctx.Done()
	cancel()

	if logs.FilterMessage("operation timed out").Len() != 1 {
		t.Error("expected a timeout log entry")
	}

	ctx, cancel = WithTimeout(context.Background(), time.Hour, zap.New(core), "fast")
	cancel()
	if ctx.Err() != context.Canceled {
		t.Errorf("err = %v", ctx.Err())
	}
	if logs.Len() != 1 {
		t.Error("cancelled context should not log")
	}
}
