package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/signalnine/benchpoints/internal/points"
	"github.com/signalnine/benchpoints/internal/result"
)

type DirSummary struct {
	Name    string `json:"name"`
	Lines   int    `json:"lines"`
	Points  int    `json:"points"`
	Skipped int    `json:"skipped"`
	Status  string `json:"status"`
}

// Generate renders the outcome of a conversion run.
func Generate(summary *result.Summary, format string, w io.Writer) error {
	rows := make([]DirSummary, 0, len(summary.Dirs))
	for _, d := range summary.Dirs {
		rows = append(rows, DirSummary{
			Name:    d.Name,
			Lines:   d.Lines,
			Points:  d.Points,
			Skipped: d.Skipped,
			Status:  d.Status(),
		})
	}

	switch format {
	case "markdown":
		return writeSummaryMarkdown(rows, w)
	case "json":
		return writeJSON(rows, w)
	default:
		return writeSummaryTable(rows, w)
	}
}

func writeSummaryTable(rows []DirSummary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DIRECTORY\tLINES\tPOINTS\tSKIPPED\tSTATUS")
	fmt.Fprintln(tw, strings.Repeat("-", 60))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", r.Name, r.Lines, r.Points, r.Skipped, r.Status)
	}
	return tw.Flush()
}

func writeSummaryMarkdown(rows []DirSummary, w io.Writer) error {
	fmt.Fprintln(w, "| Directory | Lines | Points | Skipped | Status |")
	fmt.Fprintln(w, "|---|---|---|---|---|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %s |\n", r.Name, r.Lines, r.Points, r.Skipped, r.Status)
	}
	return nil
}

// PointStats describes an existing points file.
type PointStats struct {
	Name       string `json:"name"`
	Points     int    `json:"points"`
	FirstIndex int    `json:"first_index"`
	LastIndex  int    `json:"last_index"`
	Min        string `json:"min,omitempty"`
	Max        string `json:"max,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CollectStats reads the points file of every run directory under baseDir.
// Directories whose points file is missing or malformed are reported with
// Error set rather than failing the whole collection.
func CollectStats(baseDir string, sorted bool) ([]PointStats, error) {
	names, err := result.ListDirs(baseDir, sorted)
	if err != nil {
		return nil, err
	}
	stats := make([]PointStats, 0, len(names))
	for _, name := range names {
		pts, err := points.ReadFile(result.OutputPath(baseDir, name))
		if err != nil {
			stats = append(stats, PointStats{Name: name, Error: err.Error()})
			continue
		}
		stats = append(stats, summarize(name, pts))
	}
	return stats, nil
}

func summarize(name string, pts []points.Point) PointStats {
	s := PointStats{Name: name, Points: len(pts)}
	if len(pts) == 0 {
		return s
	}
	s.FirstIndex = pts[0].Index
	s.LastIndex = pts[len(pts)-1].Index
	lo, hi := pts[0].Value, pts[0].Value
	for _, p := range pts[1:] {
		if p.Value.Cmp(lo) < 0 {
			lo = p.Value
		}
		if p.Value.Cmp(hi) > 0 {
			hi = p.Value
		}
	}
	s.Min = lo.String()
	s.Max = hi.String()
	return s
}

// GenerateStats renders point file statistics.
func GenerateStats(stats []PointStats, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return writeStatsMarkdown(stats, w)
	case "json":
		return writeJSON(stats, w)
	default:
		return writeStatsTable(stats, w)
	}
}

func statsRow(s PointStats) []string {
	if s.Error != "" {
		return []string{s.Name, "-", "-", "-", "-", s.Error}
	}
	if s.Points == 0 {
		return []string{s.Name, "0", "-", "-", "-", "ok"}
	}
	return []string{
		s.Name,
		fmt.Sprintf("%d", s.Points),
		fmt.Sprintf("%d..%d", s.FirstIndex, s.LastIndex),
		s.Min,
		s.Max,
		"ok",
	}
}

func writeStatsTable(stats []PointStats, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DIRECTORY\tPOINTS\tINDEX RANGE\tMIN\tMAX\tSTATUS")
	fmt.Fprintln(tw, strings.Repeat("-", 70))
	for _, s := range stats {
		fmt.Fprintln(tw, strings.Join(statsRow(s), "\t"))
	}
	return tw.Flush()
}

func writeStatsMarkdown(stats []PointStats, w io.Writer) error {
	fmt.Fprintln(w, "| Directory | Points | Index Range | Min | Max | Status |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|")
	for _, s := range stats {
		fmt.Fprintf(w, "| %s |\n", strings.Join(statsRow(s), " | "))
	}
	return nil
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
