package core

// CategoryTotal is an amount aggregated under a category name.
type CategoryTotal struct {
	Name  string
	Total Money
}

// TransactionDetail is a transaction joined with its account and category
// names, as rendered in the monthly report.
type TransactionDetail struct {
	Date     Date
	Account  string
	Category string
	Amount   Money
	Note     string
}
