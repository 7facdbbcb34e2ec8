// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 {
		t.Errorf("GenerateRequestID() length = %d, want 36", len(a))
	}
	if a == b {
		t.Error("GenerateRequestID() returned duplicate IDs")
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want req-123", got)
	}

	ctx = ContextWithNewRequestID(context.Background())
	if got := RequestIDFromContext(ctx); got == "" {
		t.Error("ContextWithNewRequestID() did not set an ID")
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-abc")

	Ctx(ctx).Info().Msg("handled")
	CtxWarn(ctx).Msg("slow")
	CtxErr(ctx, errors.New("bad")).Msg("failed")

	output := buf.String()
	if strings.Count(output, `"request_id":"req-abc"`) != 3 {
		t.Errorf("expected request_id on every line, got: %s", output)
	}
	if !strings.Contains(output, `"error":"bad"`) {
		t.Errorf("expected error field, got: %s", output)
	}
}

func TestCtxWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	logger := CtxWith(ctx).Str("type", "popular").Logger()
	logger.Info().Msg("dispatch")

	output := buf.String()
	if !strings.Contains(output, `"type":"popular"`) {
		t.Errorf("expected type field, got: %s", output)
	}
	if strings.Contains(output, "request_id") {
		t.Errorf("unexpected request_id without one in context: %s", output)
	}
}
