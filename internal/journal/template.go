// Package journal expands journal-path templates like
// "Calendar/{year}/{month:02d}/{year}-{month:02d}-{day:02d}".
package journal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var placeholderRe = regexp.MustCompile(`\{([^}:]+)(?::([^}]+))?\}`)

// Expand substitutes date variables into template. Integer variables
// (year, month, day) honour zero-padding specifiers of the form {x:0Nd};
// string variables (month_name, month_abbr, weekday, weekday_abbr)
// ignore specifiers. Unknown variables and bad specifiers are errors.
func Expand(template string, date time.Time) (string, error) {
	intVars := map[string]int{
		"year":  date.Year(),
		"month": int(date.Month()),
		"day":   date.Day(),
	}
	strVars := map[string]string{
		"month_name":   date.Format("January"),
		"month_abbr":   date.Format("Jan"),
		"weekday":      date.Format("Monday"),
		"weekday_abbr": date.Format("Mon"),
	}

	var expandErr error
	out := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		sub := placeholderRe.FindStringSubmatch(m)
		name, spec := sub[1], sub[2]

		if v, ok := intVars[name]; ok {
			s, err := formatInt(v, spec)
			if err != nil && expandErr == nil {
				expandErr = err
			}
			return s
		}
		if s, ok := strVars[name]; ok {
			return s
		}
		if expandErr == nil {
			expandErr = fmt.Errorf("journal: unknown template variable: %s", name)
		}
		return m
	})
	if expandErr != nil {
		return "", expandErr
	}
	return out, nil
}

func formatInt(v int, spec string) (string, error) {
	switch {
	case spec == "" || spec == "d":
		return strconv.Itoa(v), nil
	case strings.HasPrefix(spec, "0"):
		width, err := strconv.Atoi(strings.TrimSuffix(spec[1:], "d"))
		if err != nil || width <= 0 {
			return "", fmt.Errorf("journal: invalid format specifier: %s", spec)
		}
		return fmt.Sprintf("%0*d", width, v), nil
	default:
		return "", fmt.Errorf("journal: unsupported format specifier: %s", spec)
	}
}
