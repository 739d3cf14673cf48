package appctx

import "context"

// ContextKey is the shared type for all context keys in this codebase.
// Keeping it in a tiny package avoids import cycles between the HTTP adapter
// and the upstream client.
type ContextKey string

func (c ContextKey) String() string { return string(c) }

var (
	// ContextKeyCredential holds the bearer credential extracted from the
	// session cookie. Absence means the request never reaches the backend.
	ContextKeyCredential = ContextKey("Credential")

	ContextKeyUserId        = ContextKey("UserId")
	ContextKeyCorrelationId = ContextKey("CorrelationId")
)

func GetString(ctx context.Context, key ContextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok
}

func Set(ctx context.Context, key ContextKey, value any) context.Context {
	return context.WithValue(ctx, key, value)
}

// Credential returns the bearer credential carried by ctx, if any.
func Credential(ctx context.Context) (string, bool) {
	v, ok := GetString(ctx, ContextKeyCredential)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
