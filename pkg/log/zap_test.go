package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tenant-maintenance-assistant/pkg/log"
)

func TestContextFieldsAreAttached(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := log.NewWithZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-1")
	ctx = log.WithSessionID(ctx, "sess-9")
	l.Infof(ctx, "hello %s", "tenant")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" {
		t.Errorf("expected request_id req-1, got %v", fields["request_id"])
	}
	if fields["session_id"] != "sess-9" {
		t.Errorf("expected session_id sess-9, got %v", fields["session_id"])
	}
	if entries[0].Message != "hello tenant" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
}

func TestNoContextFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := log.NewWithZap(zap.New(core))

	l.Warn(context.Background(), "plain")

	if got := len(logs.All()[0].Context); got != 0 {
		t.Errorf("expected no fields, got %d", got)
	}
}

func TestInitAndNop(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	l.Debugf(context.Background(), "dropped %d", 1)

	log.NewNop().Errorf(context.Background(), "discarded")
}
