package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/soonpage/internal/domain"
)

type theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Category lipgloss.Style
	Hint     lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Hint:     lipgloss.NewStyle().Faint(true),
	}
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRun(w io.Writer, run domain.GenerationRun, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyRun(w, run, runID)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyRun(w io.Writer, run domain.GenerationRun, runID string) {
	th := defaultTheme()

	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Source:     %s\n", run.Source)
	fmt.Fprintf(w, "Output:     %s\n", run.OutputDir)
	fmt.Fprintf(w, "Started:    %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:   %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:     %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, s := range run.Sites {
		fmt.Fprintf(w, "- %s %s\n", th.Title.Render(s.Plan.Domain.String()), th.Category.Render("["+string(s.Plan.Category)+"]"))
		fmt.Fprintf(w, "  %s\n", s.Plan.Title)
		for _, f := range s.Files {
			fmt.Fprintf(w, "  %s\n", th.Subtitle.Render(f))
		}
	}
	fmt.Fprintf(w, "\n%d site(s) generated\n", len(run.Sites))
}

func printPlans(w io.Writer, plans []domain.SitePlan, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plans)
	case "pretty", "":
		th := defaultTheme()
		for _, p := range plans {
			fmt.Fprintf(w, "%s %s\n", th.Title.Render(p.Domain.String()), th.Category.Render("["+string(p.Category)+"]"))
			fmt.Fprintf(w, "  name:  %s\n", p.DisplayName)
			fmt.Fprintf(w, "  title: %s\n", p.Title)
		}
		return nil
	default:
		return checkFormat(format)
	}
}
