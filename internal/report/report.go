package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ryanditko/Prova-RPA/internal/reading"
	"github.com/Ryanditko/Prova-RPA/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"})

	cityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"})
)

const ruleWidth = 60

// WriteReading renders one formatted summary block for a reading. Absent
// fields render as "-". The description is capitalized here, at display
// time; the stored value keeps the provider's casing.
func WriteReading(w io.Writer, r reading.Reading) {
	header := r.City
	if r.Country != nil {
		header += ", " + *r.Country
	}

	rule := ruleStyle.Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render("WEATHER: "+header))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Temperature:  %s\n", floatOrDash(r.TemperatureC, "°C"))
	fmt.Fprintf(w, "Feels like:   %s\n", floatOrDash(r.FeelsLikeC, "°C"))
	fmt.Fprintf(w, "Min/Max:      %s / %s\n", floatOrDash(r.TempMinC, "°C"), floatOrDash(r.TempMaxC, "°C"))
	fmt.Fprintf(w, "Humidity:     %s\n", intOrDash(r.HumidityPct, "%"))
	fmt.Fprintf(w, "Pressure:     %s\n", intOrDash(r.PressureHPa, " hPa"))
	fmt.Fprintf(w, "Description:  %s\n", textOrDash(r.Description))
	fmt.Fprintf(w, "Wind speed:   %s\n", floatOrDash(r.WindSpeedMS, " m/s"))
	fmt.Fprintf(w, "Cloud cover:  %s\n", intOrDash(r.CloudCoverPct, "%"))
	fmt.Fprintf(w, "Observed at:  %s\n", r.ObservedAt)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// WriteRecent renders the final listing of the most recent stored rows.
func WriteRecent(w io.Writer, rows []store.RecentReading) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No readings stored yet.")
		return
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Last %d reading(s):", len(rows))))
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", ruleWidth)))
	for _, row := range rows {
		fmt.Fprintf(w, "%s  %8s  %-24s  %s\n",
			cityStyle.Render(fmt.Sprintf("%-14s", row.City)),
			floatOrDash(row.TemperatureC, "°C"),
			textOrDash(row.Description),
			row.ObservedAt,
		)
	}
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", ruleWidth)))
}

func floatOrDash(v *float64, suffix string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%s", *v, suffix)
}

func intOrDash(v *int64, suffix string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%s", *v, suffix)
}

func textOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return capitalize(*v)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
