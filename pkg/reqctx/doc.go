// Package reqctx carries request-scoped data through context.Context:
// request metadata, authentication claims and the organization a request
// is bound to. Keys are unexported; use the With*/From* helpers.
package reqctx
