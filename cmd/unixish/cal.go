package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/unixish/unixish/pkg/style"
)

var (
	calMonth    string
	calShowYear bool
)

var calCmd = &cobra.Command{
	Use:   "cal [YEAR]",
	Short: "Display a calendar",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCal,
}

func init() {
	calCmd.Flags().StringVarP(&calMonth, "month", "m", "", "Month name or number (1-12)")
	calCmd.Flags().BoolVarP(&calShowYear, "year", "y", false, "Show whole current year")
}

// monthLines is the fixed height of one rendered month: header, weekday
// row, and six week rows, so that year view rows always align.
const monthLines = 8

func runCal(cmd *cobra.Command, args []string) error {
	if calShowYear && (calMonth != "" || len(args) > 0) {
		return errors.New("--year cannot be combined with a month or year")
	}

	today := time.Now()
	year := today.Year()
	yearGiven := false

	if len(args) > 0 {
		y, err := parseYear(args[0])
		if err != nil {
			return err
		}
		year = y
		yearGiven = true
	}

	var month time.Month
	monthGiven := calMonth != ""
	if monthGiven {
		m, err := parseMonth(calMonth)
		if err != nil {
			return err
		}
		month = m
	}

	// Bare "cal" shows the current month; a bare year shows that whole year.
	if !monthGiven && !yearGiven && !calShowYear {
		month = today.Month()
		monthGiven = true
	}

	out := cmd.OutOrStdout()
	st := newStyleSet()

	if monthGiven {
		fmt.Fprintln(out, strings.Join(formatMonth(year, month, true, today, st), "\n"))
		return nil
	}

	fmt.Fprintf(out, "%32d\n", year)
	for q := time.January; q <= time.December; q += 3 {
		row := [3][]string{
			formatMonth(year, q, false, today, st),
			formatMonth(year, q+1, false, today, st),
			formatMonth(year, q+2, false, today, st),
		}
		for i := 0; i < monthLines; i++ {
			fmt.Fprintln(out, row[0][i]+row[1][i]+row[2][i])
		}
		fmt.Fprintln(out)
	}
	return nil
}

// formatMonth renders one month as monthLines strings of width 22:
// Sunday-first weeks, two-character day cells, today shown in the Today
// style when it falls inside the month.
func formatMonth(year int, month time.Month, withYear bool, today time.Time, st *style.Set) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()

	header := month.String()
	if withYear {
		header = fmt.Sprintf("%s %d", header, year)
	}

	lines := []string{
		center(header, 20) + "  ",
		"Su Mo Tu We Th Fr Sa  ",
	}

	cells := make([]string, int(first.Weekday()))
	for i := range cells {
		cells[i] = "  "
	}
	for day := 1; day <= lastDay; day++ {
		cell := fmt.Sprintf("%2d", day)
		if year == today.Year() && month == today.Month() && day == today.Day() {
			cell = st.Today.Sprint(cell)
		}
		cells = append(cells, cell)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, "  ")
	}

	for i := 0; i < len(cells); i += 7 {
		lines = append(lines, strings.Join(cells[i:i+7], " ")+"  ")
	}
	for len(lines) < monthLines {
		lines = append(lines, strings.Repeat(" ", 22))
	}
	return lines
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func parseYear(val string) (int, error) {
	year, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("Invalid integer %q", val)
	}
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("year %q not in the range 1 through 9999", val)
	}
	return year, nil
}

// parseMonth accepts a number (1-12) or an unambiguous case-insensitive
// prefix of an English month name.
func parseMonth(val string) (time.Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %q not in the range 1 through 12", val)
		}
		return time.Month(n), nil
	}

	var match time.Month
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), strings.ToLower(val)) {
			if match != 0 {
				return 0, fmt.Errorf("Invalid month %q", val)
			}
			match = m
		}
	}
	if match == 0 {
		return 0, fmt.Errorf("Invalid month %q", val)
	}
	return match, nil
}
