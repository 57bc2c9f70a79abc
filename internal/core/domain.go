package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Shopping      Category = "Shopping"
	Bills         Category = "Bills"
	Others        Category = "Others"
)

// DefaultDescription replaces a blank description instead of rejecting it.
const DefaultDescription = "No description"

// DateLayout is the textual form of a Date in the store.
const DateLayout = "2006-01-02"

type (
	Category string

	Date struct {
		time.Time
	}

	Expense struct {
		Date        Date
		Category    Category
		Amount      decimal.Decimal
		Description string
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownCategory = errors.New("unknown category")
)

// Categories returns every allowed category in its fixed display order.
// The order matters: menu numbering and summary tie-breaking follow it.
func Categories() []Category {
	return []Category{Food, Transport, Entertainment, Shopping, Bills, Others}
}

// Valid reports whether c belongs to the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory matches s against the fixed category set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// CategoryByNumber resolves a 1-based menu selection to a category.
func CategoryByNumber(n int) (Category, error) {
	cats := Categories()
	if n < 1 || n > len(cats) {
		return "", ErrUnknownCategory
	}
	return cats[n-1], nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses the ISO-8601 form YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ParseAmount parses a user-supplied amount. It accepts both dot and comma
// decimal separators and requires a strictly positive value.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// NewExpense builds an expense, substituting the description placeholder
// when the description is blank.
func NewExpense(date Date, category Category, amount decimal.Decimal, description string) Expense {
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}
	return Expense{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return ErrUnknownCategory
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
