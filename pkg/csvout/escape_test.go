package csvout

import (
	"testing"
	"time"
)

func TestEscapeField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "CT-1001", "CT-1001"},
		{"spaces only", "Utrecht CO Tower", "Utrecht CO Tower"},
		{"comma", "Tower, North", `"Tower, North"`},
		{"double quote", `Say "hi"`, `"Say ""hi"""`},
		{"single quote alone", "O'Brien", `"O'Brien"`},
		{"newline", "line1\nline2", "line1 line2"},
		{"crlf counts once", "line1\r\nline2", "line1 line2"},
		{"carriage return", "line1\rline2", "line1 line2"},
		{"unicode separators", "a\u2028b\u2029c\u0085d", "a b c d"},
		{"vertical tab and form feed", "a\vb\fc", "a b c"},
		{"newline and comma", "North,\nSouth", `"North, South"`},
		{"newline and quote", "say\n\"hi\"", `"say ""hi"""`},
		{"only quote", `"`, `""""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EscapeField(tt.input); got != tt.want {
				t.Errorf("EscapeField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole seconds", time.Date(2025, 12, 3, 14, 22, 31, 0, time.UTC), "2025-12-03T14:22:31"},
		{"zero seconds kept", time.Date(2025, 12, 3, 14, 22, 0, 0, time.UTC), "2025-12-03T14:22:00"},
		{"fraction when present", time.Date(2025, 12, 3, 14, 22, 31, 500_000_000, time.UTC), "2025-12-03T14:22:31.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatTime(tt.in); got != tt.want {
				t.Errorf("FormatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
