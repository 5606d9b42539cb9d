package league

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2026-08-07", "2026-08-07", false},
		{"2026-8-7", "2026-08-07", false},
		{"TBD", "", true},
		{"", "", true},
		{"07/08/2026", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Normalization(t *testing.T) {
	// Out-of-range day and month roll over the way time.Date does.
	if got := NewDate(2026, 8, 32).String(); got != "2026-09-01" {
		t.Errorf("NewDate(2026, 8, 32) = %v, want 2026-09-01", got)
	}
	if got := NewDate(2026, 13, 1).String(); got != "2027-01-01" {
		t.Errorf("NewDate(2026, 13, 1) = %v, want 2027-01-01", got)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2026, time.August, 7)
	b := a.Add(7)
	if !a.Before(b) || !b.After(a) {
		t.Errorf("%v should be before %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date is neither before nor after itself")
	}
	if got := b.String(); got != "2026-08-14" {
		t.Errorf("Add(7) = %v, want 2026-08-14", got)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("the zero Date should report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today should not be zero")
	}
}
