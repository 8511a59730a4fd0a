// Package zap adapts go.uber.org/zap to the log.Logger interface so
// violation diagnostics can be routed into a zap-based logging stack.
//
// Log events carry trace_id/span_id fields when the context holds an
// active OpenTelemetry span, and the constructor tees into the otelzap
// bridge so records also reach the OTel log pipeline.
package zap
