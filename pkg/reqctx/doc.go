// Package reqctx carries request-scoped data through context.Context.
//
// HTTP middleware stores values once per request; handlers, services and the
// authorization layer read them back through type-safe accessors. Keys are
// unexported so nothing outside this package can collide with them.
//
// Contracts:
//
//   - RequestMeta is set by the request-id middleware for every request.
//   - Claims are set only for authenticated requests (token present and valid).
package reqctx
