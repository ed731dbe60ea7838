package checkout

const (
	MinProductNameLength = 2
	MinProductPrice      = 1
	MaxImageURLLength    = 2048

	// Quantity is fixed: a checkout always sells exactly one unit of one product.
	Quantity = 1

	// SessionIDPlaceholder is substituted by the gateway with the finished session's id.
	SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"
)

// Buyer-facing validation messages. The wording is part of the public contract.
const (
	MsgProductNameTooShort     = "Product name must have least 2 characters."
	MsgProductPriceNotPositive = "Product Price must have be Positive"
	MsgInvalidEmail            = "Invalid E-mail."
	MsgEmailRequired           = "E-mail is required."
	MsgImageURLTooLong         = "Product can't have more than 2048 characters."
)

type Mode string

const (
	ModePayment Mode = "payment"
)

type PaymentStatus string

const (
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
	PaymentStatusNoPaymentRequired PaymentStatus = "no_payment_required"
)

func (s PaymentStatus) IsSettled() bool {
	return s == PaymentStatusPaid || s == PaymentStatusNoPaymentRequired
}
