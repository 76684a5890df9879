package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "circles-of-care-site", "test"), logs
}

func TestSecurityLogger(t *testing.T) {
	t.Run("Should log rate limit triggers at warn", func(t *testing.T) {
		sl, logs := observed()
		sl.LogRateLimitTriggered(context.Background(), "203.0.113.9", "curl/8", "req-1", "/v1/contact", "rl:contact:")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
		assert.Equal(t, "rate_limit_triggered", entry.Message)

		fields := entry.ContextMap()
		assert.Equal(t, "circles-of-care-site", fields["service"])
		assert.Equal(t, "203.0.113.9", fields["ip"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "/v1/contact", fields["endpoint"])
		assert.Equal(t, map[string]interface{}{"key_prefix": "rl:contact:"}, fields["details"])
	})

	t.Run("Should log CSRF rejections with the reason", func(t *testing.T) {
		sl, logs := observed()
		sl.LogCSRFRejected(context.Background(), "203.0.113.9", "", "req-2", "/contact", "missing_token")

		entries := logs.FilterMessage("csrf_rejected").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.NotContains(t, entries[0].ContextMap(), "user_agent")
		assert.Equal(t, map[string]interface{}{"reason": "missing_token"}, entries[0].ContextMap()["details"])
	})

	t.Run("Should record field names but never values", func(t *testing.T) {
		sl, logs := observed()
		sl.LogValidationFailed(context.Background(), "203.0.113.9", "req-3", map[string]string{
			"name":  "Name is required",
			"email": "Please enter a valid email address",
		})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		assert.Equal(t, map[string]interface{}{"fields": []string{"email", "name"}}, entry.ContextMap()["details"])
	})

	t.Run("Should discard events until a default is installed", func(t *testing.T) {
		assert.NotPanics(t, func() {
			DefaultLogger().LogRateLimitTriggered(context.Background(), "", "", "", "", "")
		})

		sl, logs := observed()
		SetDefaultLogger(sl)
		defer SetDefaultLogger(nil)

		DefaultLogger().LogCSRFRejected(context.Background(), "", "", "", "/contact", "token_mismatch")
		assert.Equal(t, 1, logs.Len())
	})
}
