package utils

const (
	// Item tags for the two payment buckets of a contract
	ItemTagA = "A"
	ItemTagB = "B"

	// Scheduled item statuses
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"

	// Payment methods
	MethodCash     = "cash"
	MethodTransfer = "transfer"
	MethodDeposit  = "deposit"
	MethodCheck    = "check"
	MethodECheck   = "echeck"
	MethodOther    = "other"

	// Currency conversion convention for this deployment:
	// rates are quoted as local units per one BaseCurrency unit, so
	// local -> base divides by the rate and base -> local multiplies.
	BaseCurrency = "USD"

	// Receipt number generation
	ReceiptCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ReceiptLength  = 8

	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrContractNotFound = "Contract not found"
	ErrItemNotFound     = "Scheduled item not found"
	ErrTenantRequired   = "Tenant id is required"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Rounding tolerance for balance comparisons, in currency units
	BalanceTolerance = 0.01
)

// PaymentMethods lists every accepted payment method tag.
var PaymentMethods = []string{
	MethodCash,
	MethodTransfer,
	MethodDeposit,
	MethodCheck,
	MethodECheck,
	MethodOther,
}

// IsValidPaymentMethod reports whether method is one of the accepted tags.
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
