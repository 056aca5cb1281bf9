package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log verbosity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return "info"
	}
	return levelNames[l]
}

// ParseLevel maps MARCHER_LOG_LEVEL values to a Level; empty means info.
func ParseLevel(raw string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return InfoLevel, nil
	case "warning":
		return WarnLevel, nil
	}
	for i, name := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", raw)
}

// Field is one key/value pair of a log line.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field                 { return Field{key, value} }
func Int(key string, value int) Field                { return Field{key, value} }
func Duration(key string, value time.Duration) Field { return Field{key, value.String()} }

// Error records err under "error"; a nil error is logged as null.
func Error(err error) Field {
	if err == nil {
		return Field{"error", nil}
	}
	return Field{"error", err.Error()}
}

// sink serializes writes of every logger derived from the same New call.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) writeLine(b []byte) {
	s.mu.Lock()
	_, _ = s.w.Write(append(b, '\n'))
	s.mu.Unlock()
}

// Logger writes one JSON object per line. Loggers derived with With share the sink.
type Logger struct {
	out    *sink
	level  Level
	fields []Field
}

var (
	globalMu sync.RWMutex
	global   = Discard()
)

// New builds a logger on w (stderr when nil) and installs it as the global logger.
func New(level string, w io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	l := &Logger{out: &sink{w: w}, level: lvl, fields: []Field{String("service", "marcher3d")}}
	ReplaceGlobals(l)
	return l, nil
}

// Discard returns a logger that drops everything; it is the global logger until New runs.
func Discard() *Logger {
	return &Logger{out: &sink{w: io.Discard}, level: ErrorLevel + 1}
}

// ReplaceGlobals installs l as the logger returned by L. Nil is ignored.
func ReplaceGlobals(l *Logger) {
	if l == nil {
		return
	}
	globalMu.Lock()
	global = l
	globalMu.Unlock()
}

// L returns the global logger.
func L() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// With returns a child logger that adds fields to every line.
func (l *Logger) With(fields ...Field) *Logger {
	if l == nil {
		l = L()
	}
	child := *l
	child.fields = append(append(make([]Field, 0, len(l.fields)+len(fields)), l.fields...), fields...)
	return &child
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

func (l *Logger) log(level Level, msg string, fields []Field) {
	if l == nil {
		l = L()
	}
	if level < l.level {
		return
	}
	line := make(map[string]any, len(l.fields)+len(fields)+3)
	// later fields win, call site fields override With fields
	for _, f := range l.fields {
		line[f.Key] = f.Value
	}
	for _, f := range fields {
		line[f.Key] = f.Value
	}
	line["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	line["level"] = level.String()
	line["msg"] = msg
	b, err := json.Marshal(line)
	if err != nil {
		return
	}
	l.out.writeLine(b)
}

type ctxKey struct{}

// ContextWithLogger attaches l to ctx.
func ContextWithLogger(ctx context.Context, l *Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, l)
}

// LoggerFromContext returns the logger attached to ctx, or the global one.
func LoggerFromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
			return l
		}
	}
	return L()
}
