// Package server runs the form-builder API. The REST router and the gRPC
// health endpoint share one lifecycle: both listeners are bound before
// anything is served, and cancelling the run context drains them together
// within a fixed shutdown timeout.
package server
