package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"payment-insights-go/internal/types"
)

// Catalog holds the dashboard knobs that depend on the survey wording rather
// than on code.
type Catalog struct {
	Platforms          []string `yaml:"platforms" validate:"min=1,dive,required"`
	HeatmapPlatforms   []string `yaml:"heatmap_platforms" validate:"min=1,dive,required"`
	PlatformSentinel   string   `yaml:"platform_sentinel"`
	TopN               int      `yaml:"top_n" validate:"min=1,max=50"`
	TrustExclude       []string `yaml:"trust_exclude"`
	SatisfiedValues    []string `yaml:"satisfied_values" validate:"min=1"`
	DailyValues        []string `yaml:"daily_values" validate:"min=1"`
	RecommendYes       []string `yaml:"recommend_yes" validate:"min=1"`
	RecommendReference float64  `yaml:"recommend_reference" validate:"gte=0,lte=100"`
}

// DefaultCatalog matches the published survey.
func DefaultCatalog() Catalog {
	return Catalog{
		Platforms:          types.Platforms(),
		HeatmapPlatforms:   types.Platforms(),
		PlatformSentinel:   "Other digital wallet",
		TopN:               5,
		TrustExclude:       []string{"None"},
		SatisfiedValues:    []string{"Satisfied", "Very satisfied"},
		DailyValues:        []string{"Daily"},
		RecommendYes:       []string{"Yes"},
		RecommendReference: 80,
	}
}

// LoadCatalog reads a YAML catalog from path. Keys missing from the file keep
// their defaults; an empty path returns the defaults.
func LoadCatalog(path string) (Catalog, error) {
	cat := DefaultCatalog()
	if path == "" {
		return cat, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate checks the catalog bounds.
func (c Catalog) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("catalog: %s failed %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}
