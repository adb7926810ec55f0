package httpx

type ctxKey string

// CtxKeyUserID carries the acting user's identifier when a reverse proxy or
// auth layer in front of the service sets it.
const CtxKeyUserID ctxKey = "user_id"
