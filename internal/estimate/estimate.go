// Package estimate defines the data structures related to a batch of
// estimates and includes functions for computing them from configuration.
package estimate

import (
	"errors"
	"fmt"

	"github.com/iwvelando/penalty-estimator/internal/config"
	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"go.uber.org/zap"
)

// Domain names which calculator produced an estimate.
type Domain string

const (
	DomainTraffic Domain = "traffic"
	DomainTax     Domain = "tax"
)

// Estimate holds the outcome for one configured case. Result is nil when the
// case could not be computed, and Reason explains why.
type Estimate struct {
	Name   string
	Domain Domain
	Result *penalty.Result
	Reason string
}

// Computable reports whether the estimate produced an amount.
func (e Estimate) Computable() bool {
	return e.Result != nil
}

// GetEstimates evaluates every active case, traffic first, in file order.
func GetEstimates(logger *zap.Logger, conf config.Configuration) []Estimate {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Estimate
	opts := conf.Rules.TrafficOptions()

	for _, tc := range conf.Traffic {
		if !tc.Active {
			logger.Debug(fmt.Sprintf("skipping traffic case %s because it is inactive", tc.Name),
				zap.String("op", "estimate.GetEstimates"),
			)
			continue
		}
		result, err := tc.TrafficForm.Evaluate(opts)
		results = append(results, newEstimate(logger, tc.Name, DomainTraffic, result, err))
	}

	for _, tc := range conf.Tax {
		if !tc.Active {
			logger.Debug(fmt.Sprintf("skipping tax case %s because it is inactive", tc.Name),
				zap.String("op", "estimate.GetEstimates"),
			)
			continue
		}
		f, err := tc.Form()
		if err != nil {
			results = append(results, newEstimate(logger, tc.Name, DomainTax, penalty.Result{}, err))
			continue
		}
		result, err := f.Evaluate()
		results = append(results, newEstimate(logger, tc.Name, DomainTax, result, err))
	}

	return results
}

func newEstimate(logger *zap.Logger, name string, domain Domain, result penalty.Result, err error) Estimate {
	if err != nil {
		level := logger.Info
		if !errors.Is(err, penalty.ErrIncompleteInput) && !errors.Is(err, penalty.ErrUnparsableNumber) {
			level = logger.Warn
		}
		level("case not computable",
			zap.String("op", "estimate.GetEstimates"),
			zap.String("case", name),
			zap.String("domain", string(domain)),
			zap.Error(err),
		)
		return Estimate{Name: name, Domain: domain, Reason: err.Error()}
	}

	logger.Debug("case estimated",
		zap.String("op", "estimate.GetEstimates"),
		zap.String("case", name),
		zap.String("domain", string(domain)),
		zap.Int64("amount", result.Amount),
	)
	return Estimate{Name: name, Domain: domain, Result: &result}
}
