package date

import (
	"math"
	"testing"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestYearsTo(t *testing.T) {
	testCases := []struct {
		name string
		from Date
		to   Date
		want float64
	}{
		{"same day", New(2023, 1, 1), New(2023, 1, 1), 0},
		{"one non-leap year", New(2023, 1, 1), New(2024, 1, 1), 1},
		{"one leap year", New(2024, 1, 1), New(2025, 1, 1), 366.0 / 365.0},
		{"half year", New(2023, 1, 1), New(2023, 7, 2), 182.0 / 365.0},
		{"backwards", New(2024, 1, 1), New(2023, 1, 1), -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.from.YearsTo(tc.to)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("YearsTo(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestParseTenor(t *testing.T) {
	anchor := New(2023, 1, 15)
	testCases := []struct {
		name      string
		tenor     string
		want      Date
		expectErr bool
	}{
		{"days", "30d", New(2023, 2, 14), false},
		{"weeks", "2w", New(2023, 1, 29), false},
		{"months", "6m", New(2023, 7, 15), false},
		{"years", "2y", New(2025, 1, 15), false},
		{"uppercase unit", "6M", New(2023, 7, 15), false},
		{"plain years", "1", New(2024, 1, 15), false},
		{"fractional years", "0.5", anchor.Add(183), false}, // round(0.5*365)
		{"empty", "", Date{}, true},
		{"unknown unit", "3q", Date{}, true},
		{"garbage count", "xxm", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tenor, err := ParseTenor(tc.tenor)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("ParseTenor(%q) returned error: %v, want error: %v", tc.tenor, err, tc.expectErr)
			}
			if tc.expectErr {
				return
			}
			if got := tenor.From(anchor); got != tc.want {
				t.Errorf("ParseTenor(%q).From(%s) = %s, want %s", tc.tenor, anchor, got, tc.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := New(2023, 12, 31)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON(%s): %v", b, err)
	}
	if back != d {
		t.Errorf("round trip gave %s, want %s", back, d)
	}
}
