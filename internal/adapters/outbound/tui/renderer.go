package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/theater/internal/domain"
	"github.com/abdidvp/theater/internal/domain/currency"
)

// ── Warm theater palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	typeColors = map[domain.PlayType]lipgloss.Color{
		domain.PlayTypeTragedy: lipgloss.Color("#EF4444"), // red
		domain.PlayTypeComedy:  lipgloss.Color("#F59E0B"), // amber-yellow
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	amountStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	creditStyle   = lipgloss.NewStyle().Bold(true).Foreground(success)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderStatement formats a priced invoice for terminal output.
func RenderStatement(s *domain.Statement) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("Statement")
	customer := titleStyle.Render(s.Customer)
	b.WriteString(boxStyle.Render(title + "\n" + customer))
	b.WriteString("\n\n")

	// ── Lines ──
	if len(s.Lines) == 0 {
		b.WriteString("  " + dimStyle.Render("No performances.") + "\n")
	}
	for _, line := range s.Lines {
		renderLine(&b, line)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Totals ──
	fmt.Fprintf(&b, "  %s %s\n",
		padRight("Amount owed", 34),
		amountStyle.Render(currency.FormatUSD(s.TotalAmount)),
	)
	fmt.Fprintf(&b, "  %s %s\n",
		padRight("Volume credits", 34),
		creditStyle.Render(fmt.Sprintf("%d", s.TotalCredits)),
	)

	b.WriteString("\n")
	return b.String()
}

func renderLine(b *strings.Builder, line domain.StatementLine) {
	tag := lipgloss.NewStyle().Foreground(typeColor(line.PlayType)).Render(padRight(string(line.PlayType), 8))
	seats := dimStyle.Render(fmt.Sprintf("%d seats", line.Audience))
	credits := dimStyle.Render(fmt.Sprintf("+%d", line.Credits))

	fmt.Fprintf(b, "  %s %s %s %s %s\n",
		tag,
		padRight(line.PlayName, 24),
		padLeft(currency.FormatUSD(line.Amount), 12),
		seats,
		credits,
	)
}

func typeColor(t domain.PlayType) lipgloss.Color {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return dim
}

// padRight and padLeft measure display cells, not bytes.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
