// Package middleware provides request middleware for the HTTP layer,
// currently the shared-secret gate on mutating item routes.
package middleware
