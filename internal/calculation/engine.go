package calculation

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/alitto/pond/v2"
	"github.com/puzpuzpuz/xsync/v4"
)

// BaseScenarioName names the projection run when a configuration defines no scenarios
const BaseScenarioName = "Base"

// projectionKey is the full engine input tuple; equal keys always produce equal results
type projectionKey struct {
	Totals domain.BucketTotals
	Ages   domain.AgeParameters
	Rates  domain.RateParameters
}

// ProjectionEngine orchestrates aggregation, closed-form sizing and the yearly simulation
type ProjectionEngine struct {
	Logger  Logger
	Workers int // scenario worker pool size; defaults to the CPU count

	cache *xsync.Map[projectionKey, *domain.ProjectionResult]
}

// NewProjectionEngine creates a new projection engine with an empty result cache
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Logger:  NopLogger{},
		Workers: runtime.NumCPU(),
		cache:   xsync.NewMap[projectionKey, *domain.ProjectionResult](),
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// CacheSize reports how many distinct projections are memoised
func (pe *ProjectionEngine) CacheSize() int {
	return pe.cache.Size()
}

// Project aggregates an account snapshot and projects it.
// The returned result may be shared with other callers and must not be modified.
func (pe *ProjectionEngine) Project(accounts []domain.Account, ages domain.AgeParameters, rates domain.RateParameters) (*domain.ProjectionResult, error) {
	totals, err := AggregateBuckets(accounts)
	if err != nil {
		return nil, err
	}
	return pe.ProjectTotals(totals, ages, rates)
}

// ProjectTotals projects already aggregated bucket totals
func (pe *ProjectionEngine) ProjectTotals(totals domain.BucketTotals, ages domain.AgeParameters, rates domain.RateParameters) (*domain.ProjectionResult, error) {
	if err := ValidateAges(ages); err != nil {
		return nil, err
	}
	if err := ValidateRates(rates); err != nil {
		return nil, err
	}
	if err := ValidateTotals(totals); err != nil {
		return nil, err
	}

	// "view horizon unset" and "view horizon == horizon" are the same projection
	ages.ViewHorizonAge = ages.EndAge()
	key := projectionKey{Totals: totals, Ages: ages, Rates: rates}

	if cached, ok := pe.cache.Load(key); ok {
		pe.Logger.Debugf("projection cache hit: age %d to %d", ages.CurrentAge, ages.EndAge())
		return cached, nil
	}

	result := compute(totals, ages, rates)
	actual, loaded := pe.cache.LoadOrStore(key, result)
	if !loaded {
		pe.Logger.Debugf("projected %d rows, value at horizon %.2f, annual withdrawal %.2f",
			len(result.Rows), result.ValueAtHorizon, result.AnnualWithdrawal)
	}
	return actual, nil
}

func compute(totals domain.BucketTotals, ages domain.AgeParameters, rates domain.RateParameters) *domain.ProjectionResult {
	yearsToHorizon := ages.YearsToHorizon()
	closedFormYears := float64(max(yearsToHorizon, 0))

	conservativeRate := rates.ConservativeRate / 100
	growthRate := rates.GrowthRate / 100

	valueAtHorizon := FutureValue(totals.Conservative.Principal, totals.Conservative.MonthlyContribution, conservativeRate, closedFormYears) +
		FutureValue(totals.Growth.Principal, totals.Growth.MonthlyContribution, growthRate, closedFormYears)
	withdrawal := AnnualWithdrawal(valueAtHorizon, rates.WithdrawalRate)

	rows := Simulate(SimulationInput{
		ConservativePrincipal: totals.Conservative.Principal,
		GrowthPrincipal:       totals.Growth.Principal,
		ConservativeMonthly:   totals.Conservative.MonthlyContribution,
		GrowthMonthly:         totals.Growth.MonthlyContribution,
		ConservativeRate:      conservativeRate,
		GrowthRate:            growthRate,
		CurrentAge:            ages.CurrentAge,
		HorizonAge:            ages.HorizonAge,
		EndAge:                ages.EndAge(),
		AnnualWithdrawal:      withdrawal,
	})

	return &domain.ProjectionResult{
		Totals:           totals,
		Ages:             ages,
		Rates:            rates,
		ValueAtHorizon:   valueAtHorizon,
		AnnualWithdrawal: withdrawal,
		Rows:             rows,
		Summary:          Summarize(rows, yearsToHorizon),
	}
}

// ProjectValue returns the closed-form value of one bucket after the given years.
// ratePercent is a percentage; negative or zero years return the principal.
func (pe *ProjectionEngine) ProjectValue(agg domain.BucketAggregate, ratePercent, years float64) (float64, error) {
	if !isFinite(agg.Principal) || !isFinite(agg.MonthlyContribution) || !isFinite(ratePercent) || !isFinite(years) {
		return 0, invalidf("closed-form inputs must be finite numbers")
	}
	if agg.Principal < 0 || agg.MonthlyContribution < 0 {
		return 0, invalidf("principal and monthly contribution cannot be negative")
	}
	if ratePercent < -100 || ratePercent > 100 {
		return 0, invalidf("rate must be between -100%% and 100%%, got %g%%", ratePercent)
	}
	return FutureValue(agg.Principal, agg.MonthlyContribution, ratePercent/100, years), nil
}

// RunScenarios projects every scenario of a configuration on a bounded worker pool.
// Results keep configuration order. A configuration without scenarios runs the base assumptions.
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration, now time.Time) (*domain.ProjectionReport, error) {
	totals, err := AggregateBuckets(cfg.Accounts)
	if err != nil {
		return nil, err
	}

	scenarios := cfg.Scenarios
	if len(scenarios) == 0 {
		scenarios = []domain.Scenario{{Name: BaseScenarioName}}
	}

	workers := pe.Workers
	if workers <= 0 {
		workers = 1
	}
	pool := pond.NewPool(workers, pond.WithQueueSize(len(scenarios)))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	projections := make([]domain.ScenarioProjection, len(scenarios))
	errs := make([]error, len(scenarios))

	for i := range scenarios {
		scenario := &scenarios[i]
		group.Submit(func() {
			if err := groupCtx.Err(); err != nil {
				errs[i] = err
				return
			}
			assumptions := scenario.Resolve(cfg.Assumptions)
			result, err := pe.ProjectTotals(totals, assumptions.Ages(now), assumptions.Rates())
			if err != nil {
				errs[i] = fmt.Errorf("scenario %q: %w", scenario.Name, err)
				return
			}
			projections[i] = domain.ScenarioProjection{Name: scenario.Name, Result: result}
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		pe.Logger.Warnf("scenario projection group stopped: %v", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	pe.Logger.Infof("projected %d scenarios", len(projections))
	return &domain.ProjectionReport{
		Accounts:    cfg.Accounts,
		Scenarios:   projections,
		Assumptions: cfg.Assumptions.GenerateAssumptions(now),
	}, nil
}
