package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNullEmitterDiscards(t *testing.T) {
	var e Emitter = NullEmitter{}
	e.Emit(Event{Msg: "whatever"}) // must not panic
}

func TestLogEmitterTextMode(t *testing.T) {
	var buf bytes.Buffer
	e := NewLogEmitter(&buf, false)

	e.Emit(Event{CorrelationID: "c1", Coordinator: "root", RouteID: "detail", Msg: "validate_push"})

	out := buf.String()
	if !strings.Contains(out, "[validate_push]") || !strings.Contains(out, "coordinator=root") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestLogEmitterJSONMode(t *testing.T) {
	var buf bytes.Buffer
	e := NewLogEmitter(&buf, true)

	e.Emit(Event{CorrelationID: "c1", Coordinator: "root", RouteID: "detail", Msg: "validate_push", Meta: map[string]any{"kind": "push"}})

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON line, got %q: %v", buf.String(), err)
	}
	if decoded["coordinator"] != "root" || decoded["msg"] != "validate_push" {
		t.Fatalf("unexpected decoded event: %+v", decoded)
	}
}

func TestMultiFansOutToEveryEmitter(t *testing.T) {
	var a, b bytes.Buffer
	multi := Multi(NewLogEmitter(&a, false), NewLogEmitter(&b, false), nil)

	multi.Emit(Event{Msg: "navigate_start"})

	if !strings.Contains(a.String(), "navigate_start") || !strings.Contains(b.String(), "navigate_start") {
		t.Fatalf("expected both emitters to receive the event")
	}
}
