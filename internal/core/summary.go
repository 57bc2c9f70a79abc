package core

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// CategoryTotal is one summary line: a category's total and its share of the
// grand total.
type CategoryTotal struct {
	Category   Category
	Total      decimal.Decimal
	Percentage decimal.Decimal
}

// Summary aggregates a set of expenses by category. Lines follow the fixed
// category order and exclude categories with no spending.
type Summary struct {
	Lines      []CategoryTotal
	GrandTotal decimal.Decimal
	Top        Category
}

// IsEmpty reports whether there is nothing to summarize.
func (s Summary) IsEmpty() bool {
	return s.GrandTotal.IsZero()
}

// Summarize computes per-category totals, percentages of the grand total and
// the highest-spending category. Ties on the top category go to the category
// that comes first in the fixed order. Pure function, no I/O.
func Summarize(expenses []Expense) Summary {
	totals := make(map[Category]decimal.Decimal, len(Categories()))
	grand := decimal.Zero
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		grand = grand.Add(e.Amount)
	}

	summary := Summary{GrandTotal: grand}
	if grand.IsZero() {
		return summary
	}

	top := Category("")
	topTotal := decimal.Zero
	for _, c := range Categories() {
		total := totals[c]
		if total.IsPositive() {
			summary.Lines = append(summary.Lines, CategoryTotal{
				Category:   c,
				Total:      total,
				Percentage: total.Div(grand).Mul(oneHundred),
			})
		}
		if total.GreaterThan(topTotal) {
			top = c
			topTotal = total
		}
	}
	summary.Top = top

	return summary
}

// FilterByCategory returns the expenses matching the given category, in their
// original order, together with their subtotal.
func FilterByCategory(expenses []Expense, category Category) ([]Expense, decimal.Decimal) {
	var matched []Expense
	subtotal := decimal.Zero
	for _, e := range expenses {
		if e.Category == category {
			matched = append(matched, e)
			subtotal = subtotal.Add(e.Amount)
		}
	}
	return matched, subtotal
}
