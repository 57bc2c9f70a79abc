package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"spendlog/internal/core"
	"spendlog/internal/services"
)

// Menu drives the interactive expense tracker session. User mistakes are
// handled with a message and a re-prompt; only storage faults abandon the
// current operation, and even those leave the menu loop running.
type Menu struct {
	svc *services.LedgerService
	in  *bufio.Reader
	out io.Writer
}

func NewMenu(svc *services.LedgerService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run shows the menu until the user exits or the input stream ends.
// The returned error is io.EOF when input ran out, which callers may treat
// as a normal exit.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "==============================")
	fmt.Fprintln(m.out, "  Personal Expense Tracker")
	fmt.Fprintln(m.out, "==============================")

	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "MENU")
		fmt.Fprintln(m.out, "1. Add new expense")
		fmt.Fprintln(m.out, "2. View all expenses")
		fmt.Fprintln(m.out, "3. View spending summary")
		fmt.Fprintln(m.out, "4. Filter by category")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.readLine("Enter choice (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := m.addExpense(ctx); err != nil {
				return err
			}
		case "2":
			m.viewAll(ctx)
		case "3":
			m.viewSummary(ctx)
		case "4":
			if err := m.filterByCategory(ctx); err != nil {
				return err
			}
		case "5":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter 1-5.")
		}
	}
}

func (m *Menu) addExpense(ctx context.Context) error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "ADD NEW EXPENSE")

	today := core.Today()
	fmt.Fprintf(m.out, "Date: %s\n", today)

	m.printCategories()
	category, err := m.promptCategory()
	if err != nil {
		return err
	}

	amount, err := m.promptAmount()
	if err != nil {
		return err
	}

	description, err := m.readLine("Short description: ")
	if err != nil {
		return err
	}

	expense := core.NewExpense(today, category, amount, description)
	if err := m.svc.AddExpense(ctx, expense); err != nil {
		fmt.Fprintf(m.out, "Could not save expense: %v\n", err)
		return nil
	}

	fmt.Fprintf(m.out, "Expense saved: $%s for %s (%s)\n",
		expense.Amount.StringFixed(2), expense.Category, expense.Description)
	return nil
}

func (m *Menu) viewAll(ctx context.Context) {
	expenses, err := m.svc.ListExpenses(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Could not load expenses: %v\n", err)
		return
	}
	if len(expenses) == 0 {
		fmt.Fprintln(m.out, "No expenses recorded yet. Add some first!")
		return
	}
	renderExpenses(m.out, expenses)
}

func (m *Menu) viewSummary(ctx context.Context) {
	summary, err := m.svc.Summary(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Could not load expenses: %v\n", err)
		return
	}
	if summary.IsEmpty() {
		fmt.Fprintln(m.out, "No expenses to summarise yet.")
		return
	}
	renderSummary(m.out, summary)
}

func (m *Menu) filterByCategory(ctx context.Context) error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "FILTER BY CATEGORY")

	m.printCategories()
	category, err := m.promptCategory()
	if err != nil {
		return err
	}

	expenses, subtotal, err := m.svc.ExpensesByCategory(ctx, category)
	if err != nil {
		fmt.Fprintf(m.out, "Could not load expenses: %v\n", err)
		return nil
	}
	if len(expenses) == 0 {
		fmt.Fprintf(m.out, "No expenses found for %s.\n", category)
		return nil
	}

	renderFiltered(m.out, category, expenses, subtotal)
	return nil
}

func (m *Menu) printCategories() {
	fmt.Fprintln(m.out, "Categories:")
	for i, c := range core.Categories() {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, c)
	}
}

// promptCategory keeps asking until a valid category number is entered.
func (m *Menu) promptCategory() (core.Category, error) {
	count := len(core.Categories())
	for {
		line, err := m.readLine(fmt.Sprintf("Pick a category (1-%d): ", count))
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number.")
			continue
		}
		category, err := core.CategoryByNumber(n)
		if err != nil {
			fmt.Fprintf(m.out, "Please pick a number between 1 and %d.\n", count)
			continue
		}
		return category, nil
	}
}

// promptAmount keeps asking until a positive decimal amount is entered.
func (m *Menu) promptAmount() (decimal.Decimal, error) {
	for {
		line, err := m.readLine("Amount spent: $")
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := core.ParseAmount(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter an amount greater than 0.")
			continue
		}
		return amount, nil
	}
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
