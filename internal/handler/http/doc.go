// Package http implements the REST transport of the form keeper server.
//
// Routes are registered on a chi router in routes.go. Every request gets a
// trace id and an access log line; responses are gzip-compressed when the
// client accepts it. Routes under /api except sign-up, login, Google login
// and version require a bearer token, checked by the auth middleware, which
// stores the user id in the request context.
//
// Service errors are translated to status codes and the fixed message bodies
// of package app by writeError, so the terminal client can restore typed
// errors from the body.
package http
