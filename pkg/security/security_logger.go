package security

import (
	"context"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventCSRFRejected       EventType = "csrf_rejected"
	EventValidationFailed   EventType = "validation_failed"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp time.Time
	Event     EventType
	IP        string
	UserAgent string
	RequestID string
	Endpoint  string
	Details   map[string]interface{}
}

// SecurityLogger writes security events as structured zap entries, separate
// from the application log.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger atomic.Pointer[SecurityLogger]

// NewSecurityLogger wraps an existing zap logger.
func NewSecurityLogger(z *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{zapLogger: z, serviceName: serviceName, environment: environment}
}

// InitSecurityLogger builds the production zap logger and installs it as the
// default.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)
	SetDefaultLogger(sl)
	return sl
}

// SetDefaultLogger replaces the logger returned by DefaultLogger.
func SetDefaultLogger(sl *SecurityLogger) {
	defaultLogger.Store(sl)
}

// DefaultLogger returns the installed logger. Events are discarded until
// InitSecurityLogger or SetDefaultLogger is called.
func DefaultLogger() *SecurityLogger {
	if sl := defaultLogger.Load(); sl != nil {
		return sl
	}
	return NewSecurityLogger(zap.NewNop(), "", Environment())
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.WarnLevel
	if event.Event == EventValidationFailed {
		level = zapcore.InfoLevel
	}

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.Endpoint != "" {
		fields = append(fields, zap.String("endpoint", event.Endpoint))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting rejects a request
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint, keyPrefix string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Endpoint:  endpoint,
		Details:   map[string]interface{}{"key_prefix": keyPrefix},
	})
}

// LogCSRFRejected logs a state changing request refused for a missing or
// mismatched CSRF token
func (sl *SecurityLogger) LogCSRFRejected(ctx context.Context, ip, userAgent, requestID, endpoint, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventCSRFRejected,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Endpoint:  endpoint,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// LogValidationFailed logs a rejected contact submission. Only field names
// are recorded, never the submitted values.
func (sl *SecurityLogger) LogValidationFailed(ctx context.Context, ip, requestID string, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	sl.Log(ctx, SecurityEvent{
		Event:     EventValidationFailed,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"fields": names},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// Environment reports "production" under gin release mode
func Environment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
