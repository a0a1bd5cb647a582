// internal/core/service/report.go
package service

import (
	"fmt"
	"strings"

	"github.com/benefitpath/screener/internal/types"
)

// RenderReport formats a screening result as a plain-text report for the
// CLI. Output is deterministic: matches arrive ranked, interactions arrive
// in definition order, and nothing here re-sorts.
func RenderReport(result *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Benefit screening (%s) - %d program(s) matched\n", result.Jurisdiction, len(result.Matches))

	if len(result.Matches) == 0 {
		b.WriteString("\nNo programs matched the answers provided.\n")
	}

	for i, m := range result.Matches {
		fmt.Fprintf(&b, "\n%d. %s [%s, %.2f]\n", i+1, m.ProgramName, m.ConfidenceLevel, m.ConfidenceScore)
		if len(m.RequiredDocuments) > 0 {
			b.WriteString("   Required documents:\n")
			for _, doc := range m.RequiredDocuments {
				fmt.Fprintf(&b, "     - %s\n", doc)
			}
		}
		if len(m.RecommendedDocuments) > 0 {
			b.WriteString("   Recommended documents:\n")
			for _, doc := range m.RecommendedDocuments {
				fmt.Fprintf(&b, "     - %s\n", doc)
			}
		}
	}

	if len(result.Interactions) > 0 {
		b.WriteString("\nBenefit interactions:\n")
		for _, inter := range result.Interactions {
			fmt.Fprintf(&b, "  [%s] %s (%s)\n", inter.Severity, inter.Description, strings.Join(inter.ProgramNames, ", "))
		}
	}

	if len(result.FailedRuleIDs) > 0 {
		fmt.Fprintf(&b, "\n%d rule(s) could not be evaluated and were skipped:\n", len(result.FailedRuleIDs))
		for _, id := range result.FailedRuleIDs {
			fmt.Fprintf(&b, "  - %s\n", id)
		}
	}

	return b.String()
}

// Summary returns a one-line result summary for logging.
func Summary(result *Result) string {
	high := 0
	for _, m := range result.Matches {
		if m.ConfidenceLevel == types.ConfidenceHigh {
			high++
		}
	}
	return fmt.Sprintf("%d matches (%d high confidence), %d interactions, %d failed rules",
		len(result.Matches), high, len(result.Interactions), len(result.FailedRuleIDs))
}
