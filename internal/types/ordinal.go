package types

// Known platform labels, in the order the dashboards list them.
const (
	PlatformEasypaisa = "Easypaisa"
	PlatformJazzCash  = "JazzCash"
	PlatformNayaPay   = "NayaPay"
)

var (
	FrequencyOrder    = []string{"Rarely", "Occasionally", "Several times a week", "Daily"}
	SatisfactionOrder = []string{"Very dissatisfied", "Dissatisfied", "Neutral", "Satisfied", "Very satisfied"}
	ProtectionOrder   = []string{"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"}
	EaseOrder         = []string{"Very difficult to use", "Difficult to use", "Average", "Easy to use", "Very easy to use"}
)

// Platforms returns the known platform labels.
func Platforms() []string {
	return []string{PlatformEasypaisa, PlatformJazzCash, PlatformNayaPay}
}

// OrdinalOrder returns the declared category order of an ordinal field, or
// nil for nominal and free-text fields.
func OrdinalOrder(f Field) []string {
	switch f {
	case FieldUsageFrequency:
		return FrequencyOrder
	case FieldSatisfaction:
		return SatisfactionOrder
	case FieldDataProtectionConfidence:
		return ProtectionOrder
	case FieldEaseOfUse:
		return EaseOrder
	}
	return nil
}

// OrdinalScore maps an ordinal value to 1..5 (1..4 for frequency). ok is
// false when the field is not ordinal or the value is outside its domain.
func OrdinalScore(f Field, value string) (int, bool) {
	for i, v := range OrdinalOrder(f) {
		if v == value {
			return i + 1, true
		}
	}
	return 0, false
}
