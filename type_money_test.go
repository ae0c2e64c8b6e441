package finbook

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	if got := EUR(10).Add(EUR(2.5)); !got.Equal(EUR(12.5)) {
		t.Errorf("Add = %s, want %s", got, EUR(12.5))
	}
	if got := EUR(10).Sub(EUR(12)); !got.Equal(EUR(-2)) {
		t.Errorf("Sub = %s, want %s", got, EUR(-2))
	}
	if got := EUR(5).Neg(); !got.Equal(EUR(-5)) {
		t.Errorf("Neg = %s, want %s", got, EUR(-5))
	}
	if got := Min(EUR(3), EUR(7)); !got.Equal(EUR(3)) {
		t.Errorf("Min = %s, want %s", got, EUR(3))
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	// A zero Money has no currency; adding a real amount adopts its currency.
	var zero Money
	got := zero.Add(EUR(10))
	if !got.Equal(EUR(10)) {
		t.Errorf("zero.Add(EUR 10) = %s, want %s", got, EUR(10))
	}
	if got.Currency() != "EUR" {
		t.Errorf("Currency = %q, want EUR", got.Currency())
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(EUR(12.5))
	if err != nil {
		t.Fatal(err)
	}
	// decimal amounts are persisted as quoted strings to keep them exact.
	want := `{"currency":"EUR","amount":"12.5"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(EUR(12.5)) {
		t.Errorf("unmarshal = %s, want %s", back, EUR(12.5))
	}
}

func TestRate(t *testing.T) {
	testCases := []struct {
		name         string
		net, balance Money
		want         Rating
	}{
		{"earning and positive", EUR(100), EUR(500), Good},
		{"earning but still under water", EUR(100), EUR(-50), Bad},
		{"losing money", EUR(-100), EUR(500), Bad},
		{"negative balance", NO(0), EUR(-1), Bad},
		{"nothing going on", NO(0), NO(0), Neutral},
		{"no income on a positive balance", NO(0), EUR(500), Neutral},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rate(tc.net, tc.balance); got != tc.want {
				t.Errorf("rate(%s, %s) = %s, want %s", tc.net, tc.balance, got, tc.want)
			}
		})
	}
}
