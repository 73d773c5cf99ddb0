package alerting

// DefaultThreshold is the conservative minimum stock applied to any product
// type without an explicit entry in the policy, including the empty type.
const DefaultThreshold = 10

// ThresholdPolicy maps product types to their low-stock thresholds
// (domain service, no side effects).
type ThresholdPolicy struct {
	byType map[string]int
}

// NewThresholdPolicy builds a policy from a type->threshold map. The map is
// copied; later mutations of the argument do not affect the policy.
func NewThresholdPolicy(byType map[string]int) *ThresholdPolicy {
	m := make(map[string]int, len(byType))
	for t, n := range byType {
		m[t] = n
	}
	return &ThresholdPolicy{byType: m}
}

// ThresholdFor resolves the low-stock threshold for a product type.
// Unknown types fall back to DefaultThreshold.
func (p *ThresholdPolicy) ThresholdFor(productType string) int {
	if n, ok := p.byType[productType]; ok {
		return n
	}
	return DefaultThreshold
}
