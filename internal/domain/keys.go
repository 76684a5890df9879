package domain

import "context"

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeyClientIP  CtxKey = "ClientIP"
)

// RequestMeta returns the request id and client IP the HTTP layer stored on
// ctx. Either is empty outside a request.
func RequestMeta(ctx context.Context) (requestID, clientIP string) {
	requestID, _ = ctx.Value(KeyRequestID).(string)
	clientIP, _ = ctx.Value(KeyClientIP).(string)
	return requestID, clientIP
}
