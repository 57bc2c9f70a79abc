package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"spendlog/internal/core"
)

var five = decimal.NewFromInt(5)

func renderExpenses(out io.Writer, expenses []core.Expense) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "ALL EXPENSES")
	fmt.Fprintln(out, strings.Repeat("-", 65))
	fmt.Fprintf(out, "%-12s %-14s %10s  %s\n", "Date", "Category", "Amount", "Description")
	fmt.Fprintln(out, strings.Repeat("-", 65))

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
		fmt.Fprintf(out, "%-12s %-14s %10s  %s\n",
			e.Date, e.Category, "$"+e.Amount.StringFixed(2), e.Description)
	}

	fmt.Fprintln(out, strings.Repeat("-", 65))
	fmt.Fprintf(out, "%-27s %10s\n", "TOTAL", "$"+total.StringFixed(2))
}

func renderSummary(out io.Writer, summary core.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "SPENDING SUMMARY")
	fmt.Fprintln(out, strings.Repeat("-", 45))

	for _, line := range summary.Lines {
		// One bar block per 5% of total spending.
		bar := strings.Repeat("█", int(line.Percentage.Div(five).IntPart()))
		fmt.Fprintf(out, "%-14s %10s  %5s%%  %s\n",
			line.Category, "$"+line.Total.StringFixed(2), line.Percentage.StringFixed(1), bar)
	}

	fmt.Fprintln(out, strings.Repeat("-", 45))
	fmt.Fprintf(out, "%-14s %10s\n", "GRAND TOTAL", "$"+summary.GrandTotal.StringFixed(2))
	fmt.Fprintf(out, "You spend the most on: %s\n", summary.Top)
}

func renderFiltered(out io.Writer, category core.Category, expenses []core.Expense, subtotal decimal.Decimal) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s EXPENSES\n", strings.ToUpper(category.String()))
	fmt.Fprintln(out, strings.Repeat("-", 55))

	for _, e := range expenses {
		fmt.Fprintf(out, "%-12s %10s  %s\n", e.Date, "$"+e.Amount.StringFixed(2), e.Description)
	}

	fmt.Fprintln(out, strings.Repeat("-", 55))
	fmt.Fprintf(out, "Total spent on %s: $%s\n", category, subtotal.StringFixed(2))
}
