package utils

const (
	// Invitation code generation
	CodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength  = 6

	// Category used for the ledger entry posted when a settlement completes
	SettlementCategory = "Settlement"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
