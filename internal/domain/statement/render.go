// Package statement renders a priced invoice as plain text.
package statement

import (
	"fmt"
	"strings"

	"github.com/abdidvp/theater/internal/domain"
	"github.com/abdidvp/theater/internal/domain/currency"
)

// Render returns the customer-facing statement. Every line, including the
// last, ends with a newline.
func Render(s *domain.Statement) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statement for %s\n", s.Customer)
	for _, line := range s.Lines {
		fmt.Fprintf(&b, "  %s: %s (%d seats)\n", line.PlayName, currency.FormatUSD(line.Amount), line.Audience)
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", currency.FormatUSD(s.TotalAmount))
	fmt.Fprintf(&b, "You earned %d credits\n", s.TotalCredits)

	return b.String()
}
