package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const validTraceparent = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		ok      bool
		sampled bool
	}{
		{"sampled", validTraceparent, true, true},
		{"not sampled", "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-00", true, false},
		{"uppercase accepted", "00-3D23D071B5BFD6579171EFCE907685CB-08F067AA0BA902B7-01", true, true},
		{"empty", "", false, false},
		{"legacy cloud trace format", "105445aa7843bc8bf206b12000100000/1;o=1", false, false},
		{"zero trace id", "00-00000000000000000000000000000000-08f067aa0ba902b7-01", false, false},
		{"zero span id", "00-3d23d071b5bfd6579171efce907685cb-0000000000000000-01", false, false},
		{"forbidden version", "ff-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ok := parseTraceparent(tt.header)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && tc.sampled != tt.sampled {
				t.Fatalf("expected sampled=%v, got %v", tt.sampled, tc.sampled)
			}
		})
	}
}

func TestTraceFields(t *testing.T) {
	fields := traceFields(validTraceparent, "test-project")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	wantTrace := "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb"
	if fields[0].Key != "logging.googleapis.com/trace" || fields[0].String != wantTrace {
		t.Fatalf("unexpected trace field: %+v", fields[0])
	}
	if fields[1].Key != "logging.googleapis.com/spanId" || fields[1].String != "08f067aa0ba902b7" {
		t.Fatalf("unexpected span field: %+v", fields[1])
	}
	if fields[2].Type != zapcore.BoolType || fields[2].Integer != 1 {
		t.Fatalf("unexpected sampled field: %+v", fields[2])
	}
}

func TestTraceFieldsRequireProject(t *testing.T) {
	if fields := traceFields(validTraceparent, ""); fields != nil {
		t.Fatalf("expected nil fields without project, got %v", fields)
	}
	if got := traceResource(validTraceparent, ""); got != "" {
		t.Fatalf("expected empty resource without project, got %q", got)
	}
}

func TestLoggerWithTraceAddsRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	loggerWithTrace(zap.New(core), "", "test-project", "req-123").Info("hello")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["requestId"]; got != "req-123" {
		t.Fatalf("expected requestId req-123, got %v", got)
	}
}

func TestLoggerWithTraceNilBase(t *testing.T) {
	if loggerWithTrace(nil, "", "", "") == nil {
		t.Fatal("expected no-op logger for nil base")
	}
}
