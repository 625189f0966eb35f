package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LogEmitter writes events to an io.Writer, either as human-readable
// key=value lines or as JSONL (one JSON object per line).
//
// Example text output:
//
//	[validate_push] correlationID=... coordinator=home routeID=settings
//
// Example JSON output:
//
//	{"correlationID":"...","coordinator":"home","routeID":"settings","msg":"validate_push","meta":null}
type LogEmitter struct {
	writer   io.Writer
	jsonMode bool
}

// NewLogEmitter creates a LogEmitter writing to writer. A nil writer
// defaults to os.Stdout.
func NewLogEmitter(writer io.Writer, jsonMode bool) *LogEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LogEmitter{writer: writer, jsonMode: jsonMode}
}

// Emit writes event in the configured mode.
func (l *LogEmitter) Emit(event Event) {
	if l.jsonMode {
		l.emitJSON(event)
		return
	}
	l.emitText(event)
}

func (l *LogEmitter) emitJSON(event Event) {
	data, err := json.Marshal(struct {
		CorrelationID string         `json:"correlationID"`
		Coordinator   string         `json:"coordinator"`
		RouteID       string         `json:"routeID"`
		Msg           string         `json:"msg"`
		Meta          map[string]any `json:"meta"`
	}{
		CorrelationID: event.CorrelationID,
		Coordinator:   event.Coordinator,
		RouteID:       event.RouteID,
		Msg:           event.Msg,
		Meta:          event.Meta,
	})
	if err != nil {
		_, _ = fmt.Fprintf(l.writer, "{\"error\":\"failed to marshal event: %v\"}\n", err)
		return
	}
	_, _ = fmt.Fprintf(l.writer, "%s\n", data)
}

func (l *LogEmitter) emitText(event Event) {
	_, _ = fmt.Fprintf(l.writer, "[%s] correlationID=%s coordinator=%s routeID=%s",
		event.Msg, event.CorrelationID, event.Coordinator, event.RouteID)
	if len(event.Meta) > 0 {
		if metaJSON, err := json.Marshal(event.Meta); err == nil {
			_, _ = fmt.Fprintf(l.writer, " meta=%s", metaJSON)
		} else {
			_, _ = fmt.Fprintf(l.writer, " meta=%v", event.Meta)
		}
	}
	_, _ = fmt.Fprint(l.writer, "\n")
}
