package finbook

import (
	"slices"
	"testing"
	"time"
)

func TestRecurrence_Occurrences(t *testing.T) {
	testCases := []struct {
		name       string
		recurrence Recurrence
		base, end  Month
		want       []Month
	}{
		{
			name:       "once never repeats",
			recurrence: Once,
			base:       jan24,
			end:        NewMonth(2024, time.December),
			want:       nil,
		},
		{
			name:       "monthly until end",
			recurrence: Monthly,
			base:       jan24,
			end:        apr24,
			want:       []Month{feb24, mar24, apr24},
		},
		{
			name:       "quarterly skips two months",
			recurrence: Quarterly,
			base:       jan24,
			end:        NewMonth(2024, time.December),
			want:       []Month{apr24, NewMonth(2024, time.July), NewMonth(2024, time.October)},
		},
		{
			name:       "yearly lands on the same month",
			recurrence: Yearly,
			base:       NewMonth(2024, time.June),
			end:        NewMonth(2026, time.December),
			want:       []Month{NewMonth(2025, time.June), NewMonth(2026, time.June)},
		},
		{
			name:       "end before base yields nothing",
			recurrence: Monthly,
			base:       mar24,
			end:        jan24,
			want:       nil,
		},
		{
			name:       "end equal to base yields nothing",
			recurrence: Monthly,
			base:       mar24,
			end:        mar24,
			want:       nil,
		},
		{
			name:       "monthly crosses the year boundary",
			recurrence: Monthly,
			base:       NewMonth(2024, time.November),
			end:        NewMonth(2025, time.February),
			want: []Month{
				NewMonth(2024, time.December),
				NewMonth(2025, time.January),
				NewMonth(2025, time.February),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(tc.recurrence.Occurrences(tc.base, tc.end))
			if !slices.Equal(got, tc.want) {
				t.Errorf("Occurrences(%s, %s) = %v, want %v", tc.base, tc.end, got, tc.want)
			}
		})
	}
}

func TestRecurrence_IndefiniteItemStopsAtHorizon(t *testing.T) {
	item := monthly(Income, "salary", EUR(1), NewMonth(2099, time.October))
	if got := item.endMonth(); got != Horizon {
		t.Fatalf("endMonth() = %s, want %s", got, Horizon)
	}
	got := slices.Collect(item.Recurrence.Occurrences(item.baseMonth(), item.endMonth()))
	want := []Month{NewMonth(2099, time.November), Horizon}
	if !slices.Equal(got, want) {
		t.Errorf("Occurrences up to horizon = %v, want %v", got, want)
	}
}

func TestParseRecurrence(t *testing.T) {
	testCases := []struct {
		in      string
		want    Recurrence
		wantErr bool
	}{
		{in: "once", want: Once},
		{in: "monthly", want: Monthly},
		{in: "Quarterly", want: Quarterly},
		{in: "yearly", want: Yearly},
		{in: "month", want: Monthly},
		{in: "weekly", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRecurrence(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseRecurrence(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseRecurrence(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
			}
		})
	}
}
