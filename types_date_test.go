package finbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMonth_Arithmetic(t *testing.T) {
	dec24 := NewMonth(2024, time.December)
	if got := dec24.Next(); got != NewMonth(2025, time.January) {
		t.Errorf("Next() = %s, want 2025-01", got)
	}
	if got := jan24.Prev(); got != NewMonth(2023, time.December) {
		t.Errorf("Prev() = %s, want 2023-12", got)
	}
	if got := jan24.Add(14); got != NewMonth(2025, time.March) {
		t.Errorf("Add(14) = %s, want 2025-03", got)
	}
	if got := mar24.Sub(jan24); got != 2 {
		t.Errorf("Sub = %d, want 2", got)
	}
	if got := NewMonth(2025, time.February).Sub(NewMonth(2024, time.November)); got != 3 {
		t.Errorf("Sub across years = %d, want 3", got)
	}
}

func TestMonth_Ordering(t *testing.T) {
	if !jan24.Before(feb24) || feb24.Before(jan24) {
		t.Error("Before is wrong for 2024-01 vs 2024-02")
	}
	if !feb24.After(jan24) {
		t.Error("After is wrong for 2024-02 vs 2024-01")
	}
	if jan24.Compare(jan24) != 0 || jan24.Compare(feb24) != -1 || feb24.Compare(jan24) != 1 {
		t.Error("Compare is inconsistent")
	}
	// The zero month sorts before any real one.
	var zero Month
	if !zero.Before(jan24) {
		t.Error("zero month does not sort first")
	}
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "2024-01", want: jan24},
		{in: "2024-1", want: jan24},
		{in: " 2024-03 ", want: mar24},
		{in: "2024-13", wantErr: true},
		{in: "january", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMonth(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseMonth(%q) = %s, %v, want %s", tc.in, got, err, tc.want)
			}
		})
	}
}

func TestDate_Month(t *testing.T) {
	if got := MustParseDate("2024-02-29").Month(); got != feb24 {
		t.Errorf("Month() = %s, want %s", got, feb24)
	}
	if got := jan24.First(); got != MustParseDate("2024-01-01") {
		t.Errorf("First() = %s, want 2024-01-01", got)
	}
}

func TestDateMonth_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		D Date  `json:"d"`
		M Month `json:"m"`
	}{MustParseDate("2024-01-15"), jan24})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"d":"2024-01-15","m":"2024-01"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var back struct {
		D Date  `json:"d"`
		M Month `json:"m"`
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.D != MustParseDate("2024-01-15") || back.M != jan24 {
		t.Errorf("unmarshal = %+v", back)
	}
}

func TestRange_Months(t *testing.T) {
	r := NewRange(mar24, jan24) // inverted bounds are swapped
	var got []Month
	for m := range r.Months() {
		got = append(got, m)
	}
	want := []Month{jan24, feb24, mar24}
	if len(got) != len(want) {
		t.Fatalf("Months() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Months()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}
