package date

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iand/gdate"
)

var separators = []string{".", "/", "-", " "}

// Parse reads a date from a string. Numeric dates may use ".", "/", "-" or a
// space as separator and are read as day-month-year, or as year-month-day
// when the first part has four digits, so dates rendered by String parse
// back to an equal Date. Anything else is handed to a free-form date parser,
// which accepts forms like "15 May 1990".
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)

	var sep string
	for _, c := range separators {
		if strings.Contains(s, c) {
			sep = c
			break
		}
	}
	if sep == "" {
		return parseLoose(s)
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("expected three date parts, got %d", len(parts))
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return parseLoose(s)
		}
		nums[i] = n
	}

	if len(parts[0]) == 4 {
		return New(nums[0], nums[1], nums[2])
	}
	return New(nums[2], nums[1], nums[0])
}

// parseLoose falls back to genealogical date parsing and accepts only dates
// precise to the day.
func parseLoose(s string) (Date, error) {
	dp := &gdate.Parser{}
	dt, err := dp.Parse(s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	p, ok := dt.(*gdate.Precise)
	if !ok {
		return Date{}, fmt.Errorf("date %q is not precise to a day", s)
	}
	return New(p.Y, p.M, p.D)
}
