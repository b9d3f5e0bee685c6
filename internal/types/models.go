package types

// Field identifies one normalized survey column. The numeric value is the
// column position in the input file.
type Field int

const (
	FieldTimestamp Field = iota
	FieldUsername
	FieldPlatformsUsed
	FieldPrimaryWallet
	FieldUsageFrequency
	FieldMostReliable
	FieldBestIssueHandler
	FieldSatisfaction
	FieldDataProtectionConfidence
	FieldMostTrustedSecurity
	FieldMostInnovative
	FieldEaseOfUse
	FieldAdaptsQuickly
	FieldWouldRecommend
	FieldPreferPayPal
	FieldPayPalReason
	FieldNotSwitchReason
	FieldPayPalFeaturesToAdopt
	FieldShouldAdoptPayPalPractices

	// FieldCount is the number of columns the input file must carry.
	FieldCount int = iota
)

var fieldNames = [...]string{
	"timestamp",
	"username",
	"platforms_used",
	"primary_wallet",
	"usage_frequency",
	"most_reliable",
	"best_issue_handler",
	"satisfaction",
	"data_protection_confidence",
	"most_trusted_security",
	"most_innovative",
	"ease_of_use",
	"adapts_quickly",
	"would_recommend",
	"prefer_paypal",
	"paypal_reason",
	"not_switch_reason",
	"paypal_features_to_adopt",
	"should_adopt_paypal_practices",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields lists every field in column order.
func Fields() []Field {
	out := make([]Field, FieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// FieldByName resolves a normalized field name.
func FieldByName(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}
	return 0, false
}

// Response is one survey submission. It is built once by the dataset
// normalizer and never modified afterwards.
type Response struct {
	Timestamp                  string `json:"timestamp"`
	Username                   string `json:"username"`
	PlatformsUsed              string `json:"platforms_used"`
	PrimaryWallet              string `json:"primary_wallet"`
	UsageFrequency             string `json:"usage_frequency"`
	MostReliable               string `json:"most_reliable"`
	BestIssueHandler           string `json:"best_issue_handler"`
	Satisfaction               string `json:"satisfaction"`
	DataProtectionConfidence   string `json:"data_protection_confidence"`
	MostTrustedSecurity        string `json:"most_trusted_security"`
	MostInnovative             string `json:"most_innovative"`
	EaseOfUse                  string `json:"ease_of_use"`
	AdaptsQuickly              string `json:"adapts_quickly"`
	WouldRecommend             string `json:"would_recommend"`
	PreferPayPal               string `json:"prefer_paypal"`
	PayPalReason               string `json:"paypal_reason"`
	NotSwitchReason            string `json:"not_switch_reason"`
	PayPalFeaturesToAdopt      string `json:"paypal_features_to_adopt"`
	ShouldAdoptPayPalPractices string `json:"should_adopt_paypal_practices"`
}

// ResponseFromCells maps a positional row onto a Response. Cells beyond
// FieldCount are ignored and missing cells stay blank.
func ResponseFromCells(cells []string) Response {
	get := func(f Field) string {
		if int(f) < len(cells) {
			return cells[f]
		}
		return ""
	}
	return Response{
		Timestamp:                  get(FieldTimestamp),
		Username:                   get(FieldUsername),
		PlatformsUsed:              get(FieldPlatformsUsed),
		PrimaryWallet:              get(FieldPrimaryWallet),
		UsageFrequency:             get(FieldUsageFrequency),
		MostReliable:               get(FieldMostReliable),
		BestIssueHandler:           get(FieldBestIssueHandler),
		Satisfaction:               get(FieldSatisfaction),
		DataProtectionConfidence:   get(FieldDataProtectionConfidence),
		MostTrustedSecurity:        get(FieldMostTrustedSecurity),
		MostInnovative:             get(FieldMostInnovative),
		EaseOfUse:                  get(FieldEaseOfUse),
		AdaptsQuickly:              get(FieldAdaptsQuickly),
		WouldRecommend:             get(FieldWouldRecommend),
		PreferPayPal:               get(FieldPreferPayPal),
		PayPalReason:               get(FieldPayPalReason),
		NotSwitchReason:            get(FieldNotSwitchReason),
		PayPalFeaturesToAdopt:      get(FieldPayPalFeaturesToAdopt),
		ShouldAdoptPayPalPractices: get(FieldShouldAdoptPayPalPractices),
	}
}

// Value returns the raw value of one field.
func (r Response) Value(f Field) string {
	switch f {
	case FieldTimestamp:
		return r.Timestamp
	case FieldUsername:
		return r.Username
	case FieldPlatformsUsed:
		return r.PlatformsUsed
	case FieldPrimaryWallet:
		return r.PrimaryWallet
	case FieldUsageFrequency:
		return r.UsageFrequency
	case FieldMostReliable:
		return r.MostReliable
	case FieldBestIssueHandler:
		return r.BestIssueHandler
	case FieldSatisfaction:
		return r.Satisfaction
	case FieldDataProtectionConfidence:
		return r.DataProtectionConfidence
	case FieldMostTrustedSecurity:
		return r.MostTrustedSecurity
	case FieldMostInnovative:
		return r.MostInnovative
	case FieldEaseOfUse:
		return r.EaseOfUse
	case FieldAdaptsQuickly:
		return r.AdaptsQuickly
	case FieldWouldRecommend:
		return r.WouldRecommend
	case FieldPreferPayPal:
		return r.PreferPayPal
	case FieldPayPalReason:
		return r.PayPalReason
	case FieldNotSwitchReason:
		return r.NotSwitchReason
	case FieldPayPalFeaturesToAdopt:
		return r.PayPalFeaturesToAdopt
	case FieldShouldAdoptPayPalPractices:
		return r.ShouldAdoptPayPalPractices
	}
	return ""
}
