package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/KirkDiggler/otsim/internal/models"
)

// Format selects how a report is written
type Format string

const (
	// FormatText writes an aligned table for terminals
	FormatText Format = "text"

	// FormatJSON writes the full report as indented JSON
	FormatJSON Format = "json"
)

// ParseFormat converts a user supplied name into a Format
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want text or json)", models.ErrInvalidArgument, name)
	}
}

// Render writes report to w in the requested format
func Render(w io.Writer, report *models.Report, format Format) error {
	if report == nil {
		return fmt.Errorf("%w: report cannot be nil", models.ErrInvalidArgument)
	}

	switch format {
	case FormatJSON:
		return renderJSON(w, report)
	case FormatText, "":
		return renderText(w, report)
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

func renderJSON(w io.Writer, report *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func renderText(w io.Writer, report *models.Report) error {
	ties := "not allowed"
	if report.TiesAllowed {
		ties = "allowed"
	}

	fmt.Fprintf(w, "Overtime strategy simulation (2024 playoff rules)\n")
	fmt.Fprintf(w, "  run:        %s\n", report.ID)
	fmt.Fprintf(w, "  experiment: %s\n", report.ExperimentID)
	fmt.Fprintf(w, "  seed:       %d\n", report.Seed)
	fmt.Fprintf(w, "  trials:     %d per pairing (%d workers, %s)\n", report.Trials, report.Workers, report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  sudden death cap: %d rounds, ties %s\n\n", report.SuddenDeathRounds, ties)

	level := percent(report.Confidence)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "PAIRING\tRECEIVES\tKICKS\tPOSSESS FIRST\t%s CI\tPOSSESS SECOND\t%s CI\tTIES\tSUDDEN DEATH\tAVG DRIVES\n", level, level)
	for _, r := range report.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			r.Pairing.ID,
			r.Pairing.First.Name,
			r.Pairing.Second.Name,
			percent(r.FirstWin.Rate),
			interval(r.FirstWin),
			percent(r.SecondWin.Rate),
			interval(r.SecondWin),
			percent(r.Tie.Rate),
			percent(r.SuddenDeathRate),
			r.MeanPossessions,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", 100*rate)
}

func interval(e models.Estimate) string {
	return fmt.Sprintf("[%.2f%%, %.2f%%] ±%.2f", 100*e.Lower, 100*e.Upper, 100*e.StdErr)
}
