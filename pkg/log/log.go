// Package log encapsula o logrus com ID de correlação por requisição.
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela API. Fatal e Panic ficam de fora:
// só o main pode encerrar o processo.
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// Campos sempre visíveis, mesmo com o filtro de desenvolvimento ligado
var baseFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
}

var relevantPrefixes = []string{"user_", "session_", "snapshot_", "analysis_", "job_", "simulation_", "alert_", "export_", "panic_"}

// entry embute o *logrus.Entry; os métodos de nível vêm dele
type entry struct {
	*logrus.Entry
}

var L Logger = &entry{Entry: logrus.NewEntry(logrus.StandardLogger())}

// Setup aplica formato e nível no logger padrão. Nível inválido cai para info.
func Setup(level string) logrus.Level {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		PadLevelText:    IsDevelopment(),
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = &entry{Entry: logrus.NewEntry(logrus.StandardLogger())}
	return parsed
}

// IsDevelopment vale para APP_ENV vazio, "dev" ou "development"
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "dev", "development":
		return true
	}
	return false
}

func isRelevantField(key string) bool {
	if _, ok := baseFields[key]; ok {
		return true
	}
	for _, prefix := range relevantPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// Em desenvolvimento os campos fora do domínio são descartados para deixar o log curto
func (e *entry) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !isRelevantField(key) {
		return e
	}
	return &entry{Entry: e.Entry.WithField(key, value)}
}

func (e *entry) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &entry{Entry: e.Entry.WithFields(logrus.Fields(fields))}
	}

	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if isRelevantField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return e
	}
	return &entry{Entry: e.Entry.WithFields(kept)}
}

func (e *entry) WithError(err error) Logger {
	return &entry{Entry: e.Entry.WithError(err)}
}

func (e *entry) WithContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return e.WithField(correlationIDField, id)
	}
	return e
}

// WithCorrelationID gera um novo ID e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
