// Package output provides utilities for formatting and displaying estimate results.
package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/penalty-estimator/internal/estimate"
	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"github.com/iwvelando/penalty-estimator/internal/tax"
	"github.com/iwvelando/penalty-estimator/internal/traffic"
	"github.com/iwvelando/penalty-estimator/pkg/format"
)

const notComputable = "not computable"

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []estimate.Estimate, f format.Formatter) {
	fmt.Print(PrettyString(results, f))
}

// PrettyString renders results grouped by domain with a step breakdown and
// the matching disclaimer.
func PrettyString(results []estimate.Estimate, f format.Formatter) string {
	var b strings.Builder
	for _, domain := range []estimate.Domain{estimate.DomainTraffic, estimate.DomainTax} {
		var rows []estimate.Estimate
		for _, r := range results {
			if r.Domain == domain {
				rows = append(rows, r)
			}
		}
		if len(rows) == 0 {
			continue
		}

		fmt.Fprintf(&b, "--- %s estimates ---\n", domainTitle(domain))
		for _, r := range rows {
			if !r.Computable() {
				fmt.Fprintf(&b, "%s | %s (%s)\n", r.Name, notComputable, r.Reason)
				continue
			}
			fmt.Fprintf(&b, "%s | %s | %s\n", r.Name, f.Currency(r.Result.Amount), breakdown(*r.Result))
		}
		fmt.Fprintf(&b, "\n%s\n\n", disclaimer(domain))
	}
	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []estimate.Estimate) {
	fmt.Print(CsvString(results))
}

// CsvString renders one row per estimate. The amount column is empty when
// the case was not computable.
func CsvString(results []estimate.Estimate) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"name", "domain", "amount", "base", "reason"})
	for _, r := range results {
		amount, base := "", ""
		if r.Computable() {
			amount = strconv.FormatInt(r.Result.Amount, 10)
			base = r.Result.Base.String()
		}
		_ = w.Write([]string{r.Name, string(r.Domain), amount, base, r.Reason})
	}
	w.Flush()
	return b.String()
}

func breakdown(r penalty.Result) string {
	parts := []string{"base " + r.Base.String()}
	for _, step := range r.Steps {
		if step.Applied {
			parts = append(parts, fmt.Sprintf("x %s (%s)", step.Factor.String(), step.Name))
		}
	}
	return strings.Join(parts, " ")
}

func domainTitle(d estimate.Domain) string {
	switch d {
	case estimate.DomainTraffic:
		return "Traffic fine"
	case estimate.DomainTax:
		return "Tax penalty"
	}
	return string(d)
}

func disclaimer(d estimate.Domain) string {
	if d == estimate.DomainTax {
		return tax.Disclaimer
	}
	return traffic.Disclaimer
}
