package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/core/domain/model/order"
	"carcheck/internal/core/ports"
)

// ReportSource identifies which generator produced a report.
type ReportSource string

const (
	// SourceGenerative marks a report produced by the external text service.
	SourceGenerative ReportSource = "generative"

	// SourceFallback marks a report produced by the deterministic generator.
	SourceFallback ReportSource = "fallback"
)

// ReportSynthesizer turns a validated checklist plus vehicle and client
// context into report text. It calls the external generative text service
// and falls back to the deterministic rule-based generator on any failure:
// timeout, authentication, quota, malformed or empty response, or a missing
// credential. The "AI call failed" condition never propagates past the
// synthesizer.
type ReportSynthesizer struct {
	generator ports.TextGenerator
	fallback  FallbackReportGenerator
	logger    *slog.Logger
}

// NewReportSynthesizer creates a synthesizer using the given text generator.
func NewReportSynthesizer(generator ports.TextGenerator, logger *slog.Logger) ReportSynthesizer {
	return ReportSynthesizer{
		generator: generator,
		fallback:  NewFallbackReportGenerator(),
		logger:    logger.With("component", "report_synthesizer"),
	}
}

// Synthesize produces the report text for a completed checklist and reports
// which generator produced it. The source flag exists for observability, not
// correctness; both sources yield a valid report.
func (s ReportSynthesizer) Synthesize(
	ctx context.Context,
	client order.PersonalInfo,
	vehicle order.VehicleInfo,
	catalog checklist.Catalog,
	results order.Results,
	observations order.Observations,
) (string, ReportSource) {
	prompt := buildPrompt(client, vehicle, catalog, results, observations)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "generative text service failed, using fallback report",
			"error", err)
		return s.fallback.Generate(vehicle, catalog, results, observations), SourceFallback
	}
	if strings.TrimSpace(text) == "" {
		s.logger.WarnContext(ctx, "generative text service returned empty report, using fallback report")
		return s.fallback.Generate(vehicle, catalog, results, observations), SourceFallback
	}

	return text, SourceGenerative
}

// buildPrompt groups results by category into ok/attention/fail buckets.
// na points are excluded from the narrative but mentioned for audit.
func buildPrompt(
	client order.PersonalInfo,
	vehicle order.VehicleInfo,
	catalog checklist.Catalog,
	results order.Results,
	observations order.Observations,
) string {
	var b strings.Builder

	b.WriteString("You are an expert mechanic and vehicle assessor. Write a detailed, ")
	b.WriteString("professional pre-purchase inspection report that a non-expert owner can understand.\n\n")
	fmt.Fprintf(&b, "Vehicle: %s\n", vehicle.Description())
	if vehicle.VIN != "" {
		fmt.Fprintf(&b, "VIN: %s\n", vehicle.VIN)
	}
	fmt.Fprintf(&b, "Client: %s\n\n", client.FullName)
	b.WriteString("Inspection findings by category:\n\n")

	for _, category := range catalog.Categories {
		var okPoints, attentionPoints, failPoints, naPoints []string
		for _, point := range category.Points {
			switch results[point] {
			case order.PointOK:
				okPoints = append(okPoints, point)
			case order.PointAttention:
				attentionPoints = append(attentionPoints, point)
			case order.PointFail:
				failPoints = append(failPoints, point)
			case order.PointNA:
				naPoints = append(naPoints, point)
			}
		}

		fmt.Fprintf(&b, "Category: %s\n", category.Title)
		writeBucket(&b, "In good condition", okPoints)
		writeBucket(&b, "Needs attention", attentionPoints)
		writeBucket(&b, "Failed", failPoints)
		if len(naPoints) > 0 {
			fmt.Fprintf(&b, "  Not applicable: %d points\n", len(naPoints))
		}
		if note, ok := observations[category.ID]; ok && note != "" {
			fmt.Fprintf(&b, "  Inspector note: %s\n", note)
		}
		b.WriteString("\n")
	}

	b.WriteString("Write the report in Markdown with: a clear title, an executive summary ")
	b.WriteString("stating whether purchase is advisable, a per-category analysis in plain ")
	b.WriteString("language, the inspector's notes, and a prioritized list of actionable ")
	b.WriteString("recommendations with safety issues first.\n")

	return b.String()
}

func writeBucket(b *strings.Builder, label string, points []string) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for _, point := range points {
		fmt.Fprintf(b, "    - %s\n", point)
	}
}
