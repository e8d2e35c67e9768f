package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/SumitLubal/retirement/internal/calculation"
	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFileType is returned for configuration files with an unknown extension
var ErrUnsupportedFileType = errors.New("unsupported configuration file type")

// InputParser handles parsing of input configuration files
type InputParser struct {
	// Now supplies the date used to derive ages from birth dates; defaults to time.Now
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

func (ip *InputParser) now() time.Time {
	if ip.Now == nil {
		return time.Now()
	}
	return ip.Now()
}

// LoadFromFile loads configuration from a YAML, TOML or JSON file, chosen by extension
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, filepath.Ext(filename))
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes configuration bytes in the format named by ext (".yaml", ".toml", ".json")
func (ip *InputParser) Parse(data []byte, ext string) (*domain.Configuration, error) {
	var config domain.Configuration

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Accounts) == 0 {
		return fmt.Errorf("no accounts provided")
	}

	seen := make(map[string]bool, len(config.Accounts))
	for i := range config.Accounts {
		acct := &config.Accounts[i]
		if err := ip.validateAccount(acct); err != nil {
			return fmt.Errorf("account %d (%s) validation failed: %w", i, acct.Name, err)
		}
		if acct.ID != "" {
			if seen[acct.ID] {
				return fmt.Errorf("duplicate account id %q", acct.ID)
			}
			seen[acct.ID] = true
		}
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	names := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario, config.Assumptions); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if names[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		names[scenario.Name] = true
	}

	return nil
}

// validateAccount validates a single account record
func (ip *InputParser) validateAccount(acct *domain.Account) error {
	if strings.TrimSpace(acct.Name) == "" {
		return fmt.Errorf("account name is required")
	}
	if _, err := acct.Category.Bucket(); err != nil {
		return err
	}
	if acct.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: balance cannot be negative", calculation.ErrInvalidParameter)
	}
	if acct.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: monthly contribution cannot be negative", calculation.ErrInvalidParameter)
	}
	return nil
}

// ValidateAssumptions validates assumptions on their own, for callers that store them apart from accounts
func (ip *InputParser) ValidateAssumptions(assumptions *domain.Assumptions) error {
	return ip.validateAssumptions(assumptions)
}

// validateAssumptions validates the base ages and rates.
// A current age of 0 without a birth date is a valid projection from birth.
func (ip *InputParser) validateAssumptions(assumptions *domain.Assumptions) error {
	if !assumptions.BirthDate.IsZero() && assumptions.BirthDate.After(ip.now()) {
		return fmt.Errorf("birth date cannot be in the future")
	}
	if assumptions.RetirementAge <= 0 {
		return fmt.Errorf("retirement age must be positive")
	}
	if err := calculation.ValidateAges(assumptions.Ages(ip.now())); err != nil {
		return err
	}
	return calculation.ValidateRates(assumptions.Rates())
}

// validateScenario validates a single scenario against the base assumptions it overrides
func (ip *InputParser) validateScenario(scenario *domain.Scenario, base domain.Assumptions) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}

	resolved := scenario.Resolve(base)
	if err := ip.validateAssumptions(&resolved); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	return nil
}

// SaveConfiguration writes a configuration in the format named by the file extension (YAML by default)
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(config)
		data = buf.Bytes()
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	earlyRetirement := 60
	cautiousGrowth := decimal.NewFromFloat(4.5)
	cautiousWithdrawal := decimal.NewFromFloat(3.5)

	return &domain.Configuration{
		Accounts: []domain.Account{
			{
				ID:                  "emergency-fund",
				Name:                "Emergency Fund",
				Category:            domain.CategorySavings,
				Balance:             decimal.NewFromInt(15000),
				MonthlyContribution: decimal.NewFromInt(200),
			},
			{
				ID:                  "brokerage",
				Name:                "Brokerage",
				Category:            domain.CategoryInvestment,
				Balance:             decimal.NewFromInt(40000),
				MonthlyContribution: decimal.NewFromInt(500),
			},
			{
				ID:                  "employer-401k",
				Name:                "Employer 401(k)",
				Category:            domain.Category401k,
				Balance:             decimal.NewFromInt(120000),
				MonthlyContribution: decimal.NewFromInt(1200),
			},
			{
				ID:                  "roth-ira",
				Name:                "Roth IRA",
				Category:            domain.CategoryRothIRA,
				Balance:             decimal.NewFromInt(30000),
				MonthlyContribution: decimal.NewFromInt(583),
			},
		},
		Assumptions: domain.Assumptions{
			CurrentAge:       35,
			RetirementAge:    65,
			ViewHorizonAge:   90,
			ConservativeRate: decimal.NewFromInt(2),
			GrowthRate:       decimal.NewFromInt(7),
			WithdrawalRate:   decimal.NewFromInt(4),
		},
		Scenarios: []domain.Scenario{
			{Name: "Baseline"},
			{Name: "Retire at 60", RetirementAge: &earlyRetirement},
			{Name: "Cautious Markets", GrowthRate: &cautiousGrowth, WithdrawalRate: &cautiousWithdrawal},
		},
	}
}
