package domain

import (
	"fmt"
	"time"

	"github.com/SumitLubal/retirement/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the full caller-side input: an account snapshot, base assumptions and scenarios
type Configuration struct {
	Accounts    []Account   `yaml:"accounts" json:"accounts" toml:"accounts"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions" toml:"assumptions"`
	Scenarios   []Scenario  `yaml:"scenarios" json:"scenarios" toml:"scenarios"`
}

// Assumptions holds the base ages and rates every scenario starts from.
// Rates are percentages. CurrentAge wins over BirthDate when both are given;
// with neither set the projection starts at age 0.
type Assumptions struct {
	CurrentAge       int             `yaml:"current_age,omitempty" json:"current_age,omitempty" toml:"current_age,omitempty"`
	BirthDate        time.Time       `yaml:"birth_date,omitempty" json:"birth_date,omitempty" toml:"birth_date,omitempty"`
	AsOf             time.Time       `yaml:"as_of,omitempty" json:"as_of,omitempty" toml:"as_of,omitempty"`
	RetirementAge    int             `yaml:"retirement_age" json:"retirement_age" toml:"retirement_age"`
	ViewHorizonAge   int             `yaml:"view_horizon_age,omitempty" json:"view_horizon_age,omitempty" toml:"view_horizon_age,omitempty"`
	ConservativeRate decimal.Decimal `yaml:"conservative_rate" json:"conservative_rate" toml:"conservative_rate"`
	GrowthRate       decimal.Decimal `yaml:"growth_rate" json:"growth_rate" toml:"growth_rate"`
	WithdrawalRate   decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate" toml:"withdrawal_rate"`
}

// ResolveCurrentAge returns CurrentAge, or the age derived from BirthDate at AsOf (now when AsOf is unset)
func (a *Assumptions) ResolveCurrentAge(now time.Time) int {
	if a.CurrentAge > 0 || a.BirthDate.IsZero() {
		return a.CurrentAge
	}
	at := a.AsOf
	if at.IsZero() {
		at = now
	}
	return dateutil.Age(a.BirthDate, at)
}

// Ages converts the assumptions into engine age parameters
func (a *Assumptions) Ages(now time.Time) AgeParameters {
	return AgeParameters{
		CurrentAge:     a.ResolveCurrentAge(now),
		HorizonAge:     a.RetirementAge,
		ViewHorizonAge: a.ViewHorizonAge,
	}
}

// Rates converts the assumptions into engine rate parameters
func (a *Assumptions) Rates() RateParameters {
	return RateParameters{
		ConservativeRate: a.ConservativeRate.InexactFloat64(),
		GrowthRate:       a.GrowthRate.InexactFloat64(),
		WithdrawalRate:   a.WithdrawalRate.InexactFloat64(),
	}
}

// GenerateAssumptions renders the assumptions as human readable lines for reports
func (a *Assumptions) GenerateAssumptions(now time.Time) []string {
	return []string{
		fmt.Sprintf("Current age: %d, retirement age: %d", a.ResolveCurrentAge(now), a.RetirementAge),
		fmt.Sprintf("Conservative bucket growth: %s%% annually", a.ConservativeRate.StringFixed(2)),
		fmt.Sprintf("Growth bucket growth: %s%% annually", a.GrowthRate.StringFixed(2)),
		fmt.Sprintf("Withdrawal: %s%% of the projected balance at retirement, fixed each year", a.WithdrawalRate.StringFixed(2)),
		"Contributions are added once a year before growth; no inflation or tax adjustment",
	}
}

// Scenario overrides any subset of the base assumptions
type Scenario struct {
	Name             string           `yaml:"name" json:"name" toml:"name"`
	RetirementAge    *int             `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty" toml:"retirement_age,omitempty"`
	ViewHorizonAge   *int             `yaml:"view_horizon_age,omitempty" json:"view_horizon_age,omitempty" toml:"view_horizon_age,omitempty"`
	ConservativeRate *decimal.Decimal `yaml:"conservative_rate,omitempty" json:"conservative_rate,omitempty" toml:"conservative_rate,omitempty"`
	GrowthRate       *decimal.Decimal `yaml:"growth_rate,omitempty" json:"growth_rate,omitempty" toml:"growth_rate,omitempty"`
	WithdrawalRate   *decimal.Decimal `yaml:"withdrawal_rate,omitempty" json:"withdrawal_rate,omitempty" toml:"withdrawal_rate,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for the optional decimal overrides
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name             string  `yaml:"name"`
		RetirementAge    *int    `yaml:"retirement_age,omitempty"`
		ViewHorizonAge   *int    `yaml:"view_horizon_age,omitempty"`
		ConservativeRate *string `yaml:"conservative_rate,omitempty"`
		GrowthRate       *string `yaml:"growth_rate,omitempty"`
		WithdrawalRate   *string `yaml:"withdrawal_rate,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	s.Name = aux.Name
	s.RetirementAge = aux.RetirementAge
	s.ViewHorizonAge = aux.ViewHorizonAge

	var err error
	if s.ConservativeRate, err = parseOptionalDecimal(aux.ConservativeRate); err != nil {
		return fmt.Errorf("conservative_rate: %w", err)
	}
	if s.GrowthRate, err = parseOptionalDecimal(aux.GrowthRate); err != nil {
		return fmt.Errorf("growth_rate: %w", err)
	}
	if s.WithdrawalRate, err = parseOptionalDecimal(aux.WithdrawalRate); err != nil {
		return fmt.Errorf("withdrawal_rate: %w", err)
	}
	return nil
}

func parseOptionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	val, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// Resolve applies the scenario overrides on top of the base assumptions
func (s *Scenario) Resolve(base Assumptions) Assumptions {
	resolved := base
	if s.RetirementAge != nil {
		resolved.RetirementAge = *s.RetirementAge
	}
	if s.ViewHorizonAge != nil {
		resolved.ViewHorizonAge = *s.ViewHorizonAge
	}
	if s.ConservativeRate != nil {
		resolved.ConservativeRate = *s.ConservativeRate
	}
	if s.GrowthRate != nil {
		resolved.GrowthRate = *s.GrowthRate
	}
	if s.WithdrawalRate != nil {
		resolved.WithdrawalRate = *s.WithdrawalRate
	}
	return resolved
}
