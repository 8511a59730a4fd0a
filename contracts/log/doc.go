// Package log defines the structured logging interface and typed fields
// used by the optional violation sink.
//
// Adapters (such as the zap package) implement Logger so applications can
// route violation diagnostics into their existing logging backend.
package log
