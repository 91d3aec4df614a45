package render

import "github.com/jonathan/cv-builder/internal/types"

// French month names, long and abbreviated, indexed by time.Month.
var frenchMonths = [13]string{
	"", "janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchMonthsShort = [13]string{
	"", "janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// formatLongFR renders a wire date as "janvier 2023". Unparseable input
// is passed through untouched so a malformed record still exports.
func formatLongFR(wire string) string {
	t, err := types.ParseWireDate(wire)
	if err != nil {
		return wire
	}
	return frenchMonths[t.Month()] + " " + t.Format("2006")
}

// formatShortFR renders a wire date as "janv. 2023".
func formatShortFR(wire string) string {
	t, err := types.ParseWireDate(wire)
	if err != nil {
		return wire
	}
	return frenchMonthsShort[t.Month()] + " " + t.Format("2006")
}

// formatYear renders only the year, "2023".
func formatYear(wire string) string {
	t, err := types.ParseWireDate(wire)
	if err != nil {
		return wire
	}
	return t.Format("2006")
}
