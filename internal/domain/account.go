package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCategory is returned when an account category is outside the supported set
var ErrUnknownCategory = errors.New("unknown account category")

// Category identifies the kind of account a balance is held in
type Category string

const (
	CategorySavings    Category = "savings"
	CategoryInvestment Category = "investment"
	Category401k       Category = "401k"
	CategoryRothIRA    Category = "roth-ira"
)

// Categories lists every supported category in display order
var Categories = []Category{CategorySavings, CategoryInvestment, Category401k, CategoryRothIRA}

// Bucket is a growth-rate grouping that accounts are aggregated into
type Bucket int

const (
	BucketConservative Bucket = iota
	BucketGrowth
)

func (b Bucket) String() string {
	switch b {
	case BucketConservative:
		return "conservative"
	case BucketGrowth:
		return "growth"
	default:
		return fmt.Sprintf("bucket(%d)", int(b))
	}
}

// ParseCategory normalizes a category name and checks it against the supported set
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether the category is one of the supported categories
func (c Category) Valid() bool {
	switch c {
	case CategorySavings, CategoryInvestment, Category401k, CategoryRothIRA:
		return true
	}
	return false
}

// Bucket maps the category onto its growth bucket.
// Savings is the only conservative category; unknown categories are an error.
func (c Category) Bucket() (Bucket, error) {
	switch c {
	case CategorySavings:
		return BucketConservative, nil
	case CategoryInvestment, Category401k, CategoryRothIRA:
		return BucketGrowth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
}

// UnmarshalYAML accepts categories in any case and rejects unsupported values at load time
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseCategory(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalText lets JSON and TOML decoders share the same category parsing
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Account is a caller-owned record of a single balance and its monthly contribution
type Account struct {
	ID                  string          `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Name                string          `yaml:"name" json:"name" toml:"name"`
	Category            Category        `yaml:"category" json:"category" toml:"category"`
	Balance             decimal.Decimal `yaml:"balance" json:"balance" toml:"balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution"`
}

// BucketAggregate is the summed principal and monthly contribution of one bucket
type BucketAggregate struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthly_contribution"`
}

// BucketTotals holds both bucket aggregates derived from an account snapshot
type BucketTotals struct {
	Conservative BucketAggregate `json:"conservative"`
	Growth       BucketAggregate `json:"growth"`
}

// TotalPrincipal returns the combined principal of both buckets
func (bt BucketTotals) TotalPrincipal() float64 {
	return bt.Conservative.Principal + bt.Growth.Principal
}

// TotalMonthlyContribution returns the combined monthly contribution of both buckets
func (bt BucketTotals) TotalMonthlyContribution() float64 {
	return bt.Conservative.MonthlyContribution + bt.Growth.MonthlyContribution
}
