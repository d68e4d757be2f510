package services

import (
	"fmt"
	"strings"

	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/core/domain/model/order"
)

// Verdict strings chosen by fixed thresholds on fail/attention counts.
const (
	VerdictExcellent = "excellent condition, no issues found"
	VerdictAttention = "acceptable condition, medium-term maintenance items noted"
	VerdictCritical  = "critical issues found, repair required before purchase is advisable"
)

// Section headings of the fallback report.
const (
	headingImmediateAttention = "Requires immediate attention"
	headingFutureMaintenance  = "Future maintenance"
)

// genericRecommendations is the fixed list appended to every fallback report.
func genericRecommendations() []string {
	return []string{
		"Change the engine oil and filter if no recent service record is available.",
		"Check tire pressure and rotate the tires at the next service.",
		"Flush the brake fluid at the next scheduled maintenance.",
		"Perform a wheel alignment and balancing check within the next six months.",
	}
}

// FallbackReportGenerator produces the deterministic, rule-based inspection
// report used whenever the generative text service fails or is not
// configured. Given the same inputs it always produces the same text.
type FallbackReportGenerator struct{}

// NewFallbackReportGenerator creates a new FallbackReportGenerator instance.
func NewFallbackReportGenerator() FallbackReportGenerator {
	return FallbackReportGenerator{}
}

// Generate builds the markdown report.
//
// Rules:
//   - The verdict follows fixed thresholds: no fail and no attention points
//     is excellent; attention points without fails is acceptable; any fail
//     point is critical.
//   - Every fail point is listed under "Requires immediate attention" and
//     every attention point under "Future maintenance", one per line,
//     preserving the exact point name text. Points are listed in catalog
//     order so the output is stable.
//   - na points are excluded from the narrative but retained in the audit
//     line counts.
//   - The fixed generic maintenance recommendations close the report.
func (FallbackReportGenerator) Generate(
	vehicle order.VehicleInfo,
	catalog checklist.Catalog,
	results order.Results,
	observations order.Observations,
) string {
	fails := make([]string, 0)
	attentions := make([]string, 0)
	okCount, naCount := 0, 0
	for _, point := range catalog.PointNames() {
		switch results[point] {
		case order.PointFail:
			fails = append(fails, point)
		case order.PointAttention:
			attentions = append(attentions, point)
		case order.PointOK:
			okCount++
		case order.PointNA:
			naCount++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Inspection Report for %s\n\n", vehicle.Description())

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "Overall assessment: %s.\n\n", verdict(len(fails), len(attentions)))
	fmt.Fprintf(&b, "Points inspected: %d ok, %d attention, %d fail, %d not applicable.\n\n",
		okCount, len(attentions), len(fails), naCount)

	fmt.Fprintf(&b, "## %s\n\n", headingImmediateAttention)
	if len(fails) == 0 {
		b.WriteString("No critical issues were found.\n\n")
	} else {
		for _, point := range fails {
			fmt.Fprintf(&b, "- %s\n", point)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", headingFutureMaintenance)
	if len(attentions) == 0 {
		b.WriteString("No maintenance items were noted.\n\n")
	} else {
		for _, point := range attentions {
			fmt.Fprintf(&b, "- %s\n", point)
		}
		b.WriteString("\n")
	}

	if notes := observationNotes(catalog, observations); len(notes) > 0 {
		b.WriteString("## Inspector observations\n\n")
		for _, note := range notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
		b.WriteString("\n")
	}

	b.WriteString("## General maintenance recommendations\n\n")
	for _, recommendation := range genericRecommendations() {
		fmt.Fprintf(&b, "- %s\n", recommendation)
	}

	return b.String()
}

// verdict applies the fixed thresholds.
func verdict(failCount, attentionCount int) string {
	switch {
	case failCount > 0:
		return VerdictCritical
	case attentionCount > 0:
		return VerdictAttention
	default:
		return VerdictExcellent
	}
}

// observationNotes returns "Category title: note" lines in catalog order.
func observationNotes(catalog checklist.Catalog, observations order.Observations) []string {
	notes := make([]string, 0, len(observations))
	for _, category := range catalog.Categories {
		if note, ok := observations[category.ID]; ok && note != "" {
			notes = append(notes, fmt.Sprintf("%s: %s", category.Title, note))
		}
	}
	return notes
}
