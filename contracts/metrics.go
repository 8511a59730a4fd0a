package contracts

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	constant "github.com/rianquinn/bsl-sub002/contracts/constants"
)

// ViolationMetrics provides violation-related metrics using OpenTelemetry.
// The counter is recorded just before the process aborts, so a push-based
// exporter may not see the final datapoint; pull-based collection of a
// crash-looping process still will.
type ViolationMetrics struct {
	counter metric.Int64Counter
}

var (
	violationMetricsInstance *ViolationMetrics
	violationMetricsMu       sync.RWMutex
)

// InitViolationMetrics initializes violation metrics with the provided meter.
// This should be called once during application startup after telemetry is
// initialized.
func InitViolationMetrics(meter metric.Meter) {
	violationMetricsMu.Lock()
	defer violationMetricsMu.Unlock()

	if meter == nil {
		return
	}

	if violationMetricsInstance != nil {
		return
	}

	counter, err := meter.Int64Counter(
		constant.MetricContractViolationTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of contract violations"),
	)
	if err != nil {
		fmt.Fprintln(stderr, "failed to create contract violation counter:", err)
		return
	}

	violationMetricsInstance = &ViolationMetrics{counter: counter}
}

// GetViolationMetrics returns the singleton ViolationMetrics instance.
// Returns nil if InitViolationMetrics has not been called.
func GetViolationMetrics() *ViolationMetrics {
	violationMetricsMu.RLock()
	defer violationMetricsMu.RUnlock()

	return violationMetricsInstance
}

// ResetViolationMetrics clears the violation metrics singleton (useful for tests).
func ResetViolationMetrics() {
	violationMetricsMu.Lock()
	defer violationMetricsMu.Unlock()

	violationMetricsInstance = nil
}

// RecordViolation increments the contract_violation_total counter with
// kind, tier, and code labels. If metrics are not initialized, this is a no-op.
func (vm *ViolationMetrics) RecordViolation(ctx context.Context, kind Kind, code Code) {
	if vm == nil || vm.counter == nil {
		return
	}

	vm.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String(constant.AttrPrefixContract+"kind", constant.SanitizeMetricLabel(kind.Label())),
		attribute.String(constant.AttrPrefixContract+"tier", kind.Tier().String()),
		attribute.Int(constant.AttrPrefixContract+"code", int(code)),
	))
}

func recordViolationMetric(ctx context.Context, kind Kind, code Code) {
	vm := GetViolationMetrics()
	if vm != nil {
		vm.RecordViolation(ctx, kind, code)
	}
}
