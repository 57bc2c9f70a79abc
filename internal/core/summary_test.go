package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(c Category, amount string) Expense {
	return Expense{
		Date:        NewDate(2025, 3, 10),
		Category:    c,
		Amount:      decimal.RequireFromString(amount),
		Description: "test",
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]Expense{
		expense(Food, "5.00"),
		expense(Food, "15.00"),
		expense(Transport, "10.00"),
	})

	require.False(t, summary.IsEmpty())
	assert.True(t, summary.GrandTotal.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, Food, summary.Top)

	require.Len(t, summary.Lines, 2)
	assert.Equal(t, Food, summary.Lines[0].Category)
	assert.True(t, summary.Lines[0].Total.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, "66.7", summary.Lines[0].Percentage.StringFixed(1))
	assert.Equal(t, Transport, summary.Lines[1].Category)
	assert.True(t, summary.Lines[1].Total.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "33.3", summary.Lines[1].Percentage.StringFixed(1))
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.IsEmpty())
	assert.True(t, summary.GrandTotal.IsZero())
	assert.Empty(t, summary.Lines)
}

func TestSummarizeExcludesZeroCategories(t *testing.T) {
	summary := Summarize([]Expense{expense(Bills, "42.00")})

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, Bills, summary.Lines[0].Category)
	assert.Equal(t, "100.0", summary.Lines[0].Percentage.StringFixed(1))
	assert.Equal(t, Bills, summary.Top)
}

func TestSummarizeTopTieBreaksOnFixedOrder(t *testing.T) {
	// Shopping and Transport tie; Transport comes first in the fixed order.
	summary := Summarize([]Expense{
		expense(Shopping, "10.00"),
		expense(Transport, "10.00"),
	})

	assert.Equal(t, Transport, summary.Top)
}

func TestFilterByCategory(t *testing.T) {
	expenses := []Expense{
		expense(Food, "5.00"),
		expense(Transport, "10.00"),
		expense(Food, "2.50"),
	}

	matched, subtotal := FilterByCategory(expenses, Food)
	require.Len(t, matched, 2)
	assert.True(t, matched[0].Amount.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, matched[1].Amount.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, subtotal.Equal(decimal.RequireFromString("7.50")))
}

func TestFilterByCategoryNoMatches(t *testing.T) {
	expenses := []Expense{expense(Food, "5.00")}

	matched, subtotal := FilterByCategory(expenses, Bills)
	assert.Empty(t, matched)
	assert.True(t, subtotal.IsZero())
}
