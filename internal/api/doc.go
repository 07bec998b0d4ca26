// Package api wires HTTP routes to their handlers.
//
// It contains the route table for the whole service and the handlers
// package that turns requests into service calls and JSON responses.
package api
