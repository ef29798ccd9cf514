package date

import (
	"testing"
	"time"
)

func TestMonth(t *testing.T) {
	m := New(2024, time.February, 17).Month()

	if got, want := m.String(), "02-2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := m.First(), New(2024, time.February, 1); got != want {
		t.Errorf("First() = %v, want %v", got, want)
	}
	if got, want := m.Last(), New(2024, time.February, 29); got != want {
		t.Errorf("Last() = %v, want %v", got, want)
	}
	if !m.Contains(New(2024, time.February, 29)) {
		t.Errorf("%v should contain 29-02-2024", m)
	}
	if m.Contains(New(2024, time.March, 1)) {
		t.Errorf("%v should not contain 01-03-2024", m)
	}
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "10-2026", want: NewMonth(2026, time.October)},
		{in: "3-2025", want: NewMonth(2025, time.March)},
		{in: "13-2025", wantErr: true},
		{in: "2025-03", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMonth(%q) = %v, want an error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewMonth_Normalizes(t *testing.T) {
	if got, want := NewMonth(2025, 13), NewMonth(2026, time.January); got != want {
		t.Errorf("NewMonth(2025, 13) = %v, want %v", got, want)
	}
}
