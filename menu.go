package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gigurra/bank-digest/internal"
)

const separator = "________________________________________"

// minYear is the earliest year accepted by the cashback prompt
const minYear = 2000

// runMenu drives the interactive text menu until the user exits or input ends
func (a *app) runMenu(in *bufio.Reader) error {
	fmt.Fprintln(a.out, "Welcome to bank-digest, the bank operations assistant.")

	for {
		choice, err := a.ask(in, separator+"\n\nChoose a section:\n1. Web pages\n2. Services\n3. Reports\n0. Exit")
		if err != nil {
			return ignoreEOF(err)
		}

		var sectionErr error
		switch choice {
		case "1":
			sectionErr = a.submenu(in, "Web pages", []menuItem{{"Home", a.menuHome}})
		case "2":
			sectionErr = a.submenu(in, "Services", []menuItem{{"Profitable cashback categories", a.menuCashback}})
		case "3":
			sectionErr = a.submenu(in, "Reports", []menuItem{{"Spending by category", a.menuReport}})
		case "0":
			fmt.Fprintln(a.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice, please try again.")
		}
		if sectionErr != nil {
			return ignoreEOF(sectionErr)
		}
	}
}

type menuItem struct {
	title string
	run   func(in *bufio.Reader) error
}

func (a *app) submenu(in *bufio.Reader, title string, items []menuItem) error {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "%s\n\n%s:\n", separator, title)
	for i, item := range items {
		fmt.Fprintf(&prompt, "%d. %s\n", i+1, item.title)
	}
	prompt.WriteString("0. Back to main menu")

	for {
		choice, err := a.ask(in, prompt.String())
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}
		idx, convErr := strconv.Atoi(choice)
		if convErr != nil || idx < 1 || idx > len(items) {
			fmt.Fprintln(a.out, "Invalid choice, please try again.")
			continue
		}

		if err := items[idx-1].run(in); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			// The action failed; report it and stay in the menu
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *app) menuHome(in *bufio.Reader) error {
	fmt.Fprintf(a.out, "%s\nHome page\n\nSpending digest from the first day of the month up to the entered date.\n", separator)

	reference, err := askUntilValid(a, in, "Enter date and time as 'YYYY-MM-DD HH:MM:SS':", internal.ParseReferenceTime)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, separator)
	return a.runHome(context.Background(), reference)
}

func (a *app) menuCashback(in *bufio.Reader) error {
	fmt.Fprintf(a.out, "%s\nProfitable cashback categories\n\nFinds the categories that earned the most cashback in a month.\n", separator)

	maxYear := a.now().Year()
	year, err := askUntilValid(a, in, fmt.Sprintf("Enter year (%d-%d):", minYear, maxYear), func(s string) (int, error) {
		return parseIntInRange(s, minYear, maxYear, "year")
	})
	if err != nil {
		return err
	}
	month, err := askUntilValid(a, in, "Enter month (1-12):", func(s string) (int, error) {
		return parseIntInRange(s, 1, 12, "month")
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\nTop %d cashback categories:\n", separator, a.params.Top)
	return a.runCashback(year, time.Month(month), a.params.Top)
}

func (a *app) menuReport(in *bufio.Reader) error {
	fmt.Fprintf(a.out, "%s\nSpending by category\n\nSaves a report of the spending in a category over the %d days up to a date.\n",
		separator, internal.CategoryWindowDays)

	log, done := a.openLog(logReports)
	defer done()

	txs, err := a.loadTransactions(log)
	if err != nil {
		return err
	}
	categories := internal.Categories(txs)

	asOf, err := askUntilValid(a, in, "Enter date as YYYY-MM-DD (empty for today):", func(s string) (time.Time, error) {
		if s == "" {
			return a.now(), nil
		}
		return internal.ParseReportDate(s)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Selected date: %s\n", asOf.Format(internal.DateLayout))

	show, err := a.ask(in, "Show the list of your categories? (y/n)")
	if err != nil {
		return err
	}
	if isYes(show) {
		fmt.Fprintf(a.out, "\nCategories:\n%s\n", strings.Join(categories, ", "))
	}

	category, err := a.askCategory(in, categories)
	if err != nil {
		return err
	}

	name, err := a.ask(in, "Report file name (empty for the default name):")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, separator)
	return a.report(log, txs, category, asOf, name)
}

// askCategory asks until the category exists or the user accepts an empty report
func (a *app) askCategory(in *bufio.Reader, categories []string) (string, error) {
	for {
		category, err := a.ask(in, "Enter category:")
		if err != nil {
			return "", err
		}
		if category == "" {
			continue
		}
		if internal.HasCategory(categories, category) {
			return category, nil
		}

		fmt.Fprintf(a.out, "Category %q not found among your operations.\n", category)
		if suggestion := internal.SuggestCategory(categories, category); suggestion != "" {
			fmt.Fprintf(a.out, "Did you mean %q?\n", suggestion)
		}
		keep, err := a.ask(in, "Save an empty report anyway? (y/n)")
		if err != nil {
			return "", err
		}
		if isYes(keep) {
			return category, nil
		}
	}
}

// ask prints prompt and returns the trimmed answer
func (a *app) ask(in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprintf(a.out, "%s\n>>> ", prompt)
	line, err := in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askUntilValid repeats prompt until parse accepts the answer
func askUntilValid[T any](a *app, in *bufio.Reader, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := a.ask(in, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(a.out, "Error: %v. Please try again.\n", err)
	}
}

func parseIntInRange(s string, lo, hi int, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("invalid %s %q, expected %d-%d", what, s, lo, hi)
	}
	return v, nil
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
