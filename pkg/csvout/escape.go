package csvout

import (
	"regexp"
	"strings"
	"time"
)

// Header is the fixed first line of every file.
const Header = "date-time-start,date-time-end,celltower-id,celltower-name,from-number,to-number"

// TimeLayout is an ISO-8601 local date-time; fractional seconds appear only when non-zero.
const TimeLayout = "2006-01-02T15:04:05.999999999"

// lineBreakRE matches one line-break sequence, CRLF counted once.
var lineBreakRE = regexp.MustCompile("\r\n|[\n\v\f\r\u0085\u2028\u2029]")

// EscapeField replaces line breaks with a space and then, if the field holds a
// comma, double quote or single quote, wraps it in double quotes with inner
// double quotes doubled. Single quotes only trigger quoting.
func EscapeField(s string) string {
	if s == "" {
		return ""
	}
	s = lineBreakRE.ReplaceAllLiteralString(s, " ")
	if !strings.ContainsAny(s, `,"'`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatTime renders t without zone designator.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
