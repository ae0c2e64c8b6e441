package finbook

import "time"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// jan24 and friends keep month literals short in tests.
var (
	jan24 = NewMonth(2024, time.January)
	feb24 = NewMonth(2024, time.February)
	mar24 = NewMonth(2024, time.March)
	apr24 = NewMonth(2024, time.April)
)

// monthly declares a monthly item starting on the first of the month.
func monthly(kind Kind, name string, amount Money, start Month) TransactionItem {
	return NewTransactionItem(kind, name, amount, Monthly, start.First(), Date{})
}

// once declares a one-off item on the first of the month.
func once(kind Kind, name string, amount Money, start Month) TransactionItem {
	return NewTransactionItem(kind, name, amount, Once, start.First(), Date{})
}
