package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bitmark-inc/covid-chart/schema"
)

var printer = message.NewPrinter(language.English)

// FormatCount prints a count with thousands separators
func FormatCount(n uint64) string {
	return printer.Sprintf("%d", n)
}

// LegendLabel names a series after its country and latest count
func LegendLabel(s schema.CountrySeries) string {
	last, ok := s.Last()
	if !ok {
		return s.Country
	}
	return s.Country + " (" + FormatCount(last.Count) + ")"
}
