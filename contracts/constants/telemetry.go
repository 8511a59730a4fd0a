package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "bsl-sub002/contracts"

// MaxMetricLabelLength is the maximum length for metric labels to prevent
// cardinality explosion. Used by the violation metrics for label sanitization.
const MaxMetricLabelLength = 64

// AttrPrefixContract is the prefix for contract violation event attributes.
const AttrPrefixContract = "contract."

// MetricContractViolationTotal is the counter metric for contract violations.
const MetricContractViolationTotal = "contract_violation_total"

// EventContractViolated is the span event name for contract violations.
const EventContractViolated = "contract.violated"

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
