// Package report renders the ranked corpus to the console and to CSV.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"leetrank/internal/domain/model"
	"leetrank/internal/domain/ports"
)

const titleWidth = 40

// Console writes a top-N table of the hardest problems to a writer.
type Console struct {
	out  io.Writer
	topN int
}

var _ ports.Reporter = (*Console)(nil)

// NewConsole creates a console reporter showing the first topN entries.
func NewConsole(out io.Writer, topN int) *Console {
	if topN < 1 {
		topN = 1
	}
	return &Console{out: out, topN: topN}
}

// ReportTop prints the ranked table plus any spotlight, insight, and
// end-of-run warnings.
func (c *Console) ReportTop(_ context.Context, ranked []model.ScoredProblem, summary model.RunSummary) error {
	n := c.topN
	if n > len(ranked) {
		n = len(ranked)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d hardest problems by calculated score\n", n)
	fmt.Fprintf(&b, "%-6s | %-*s | %-6s | %6s | %12s | %12s | %9s\n",
		"ID", titleWidth, "Title", "Diff", "Acc%", "Accepted", "Submitted", "Score")
	b.WriteString(strings.Repeat("-", 108))
	b.WriteByte('\n')

	for _, p := range ranked[:n] {
		fmt.Fprintf(&b, "%-6d | %-*s | %-6s | %5.1f%% | %12s | %12s | %9.2f\n",
			p.ID,
			titleWidth, clip(p.Title, titleWidth),
			p.Difficulty,
			p.AcceptanceRate*100,
			humanize.Comma(p.TotalAccepted),
			humanize.Comma(p.TotalSubmissions),
			p.Score)
	}

	if summary.Spotlight != nil {
		c.writeSpotlight(&b, summary.Spotlight)
	}

	if summary.Insight != "" {
		b.WriteString("\nStudy note:\n")
		b.WriteString(summary.Insight)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nRanked %d problems (snapshot from %s)\n",
		summary.TotalRanked, humanize.Time(summary.FetchedAt))
	if summary.Dropped > 0 {
		fmt.Fprintf(&b, "warning: %d problems dropped during fetch\n", summary.Dropped)
	}
	if summary.Stale {
		b.WriteString("warning: live fetch failed, results are based on a stale cache\n")
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}

func (c *Console) writeSpotlight(b *strings.Builder, s *model.Spotlight) {
	fmt.Fprintf(b, "\nDaily challenge: %s (%s)\n", s.Daily.Title, s.Daily.Difficulty)
	if s.Rank > 0 {
		fmt.Fprintf(b, "  ranked #%d in the corpus with score %.2f\n", s.Rank, s.Score)
	}
	if len(s.Daily.Topics) > 0 {
		fmt.Fprintf(b, "  topics: %s\n", strings.Join(s.Daily.Topics, ", "))
	}
	if s.Daily.Content != "" {
		fmt.Fprintf(b, "  %s\n", clip(oneLine(s.Daily.Content), 160))
	}
	fmt.Fprintf(b, "  %s\n", s.Daily.Link)
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
