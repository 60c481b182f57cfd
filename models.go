package craftgate

// ---------------------------------------------------------------------------
// Enums
// ---------------------------------------------------------------------------

// PaymentMethod is an alternative payment method accepted by the gateway.
type PaymentMethod string

const (
	PaymentMethodCard            PaymentMethod = "CARD"
	PaymentMethodMasterpass      PaymentMethod = "MASTERPASS"
	PaymentMethodPapara          PaymentMethod = "PAPARA"
	PaymentMethodPayoneer        PaymentMethod = "PAYONEER"
	PaymentMethodSodexo          PaymentMethod = "SODEXO"
	PaymentMethodEdenred         PaymentMethod = "EDENRED"
	PaymentMethodEdenredGift     PaymentMethod = "EDENRED_GIFT"
	PaymentMethodAlipay          PaymentMethod = "ALIPAY"
	PaymentMethodPaypal          PaymentMethod = "PAYPAL"
	PaymentMethodKlarna          PaymentMethod = "KLARNA"
	PaymentMethodAfterpay        PaymentMethod = "AFTERPAY"
	PaymentMethodInstantTransfer PaymentMethod = "INSTANT_TRANSFER"
	PaymentMethodStripe          PaymentMethod = "STRIPE"
	PaymentMethodMultinet        PaymentMethod = "MULTINET"
	PaymentMethodMultinetGift    PaymentMethod = "MULTINET_GIFT"
	PaymentMethodMultinetNeoGift PaymentMethod = "MULTINET_NEO_GIFT"
	PaymentMethodBizum           PaymentMethod = "BIZUM"
	PaymentMethodPaycellDCB      PaymentMethod = "PAYCELL_DCB"
)

// Currency is an ISO 4217 currency code.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyAED Currency = "AED"
	CurrencyCHF Currency = "CHF"
)

// PaymentStatus is the gateway-side state of a payment.
type PaymentStatus string

const (
	PaymentStatusFailure         PaymentStatus = "FAILURE"
	PaymentStatusSuccess         PaymentStatus = "SUCCESS"
	PaymentStatusInitThreeDS     PaymentStatus = "INIT_THREEDS"
	PaymentStatusCallbackThreeDS PaymentStatus = "CALLBACK_THREEDS"
	PaymentStatusWaiting         PaymentStatus = "WAITING"
)

// PaymentType distinguishes how a payment was funded.
type PaymentType string

const (
	PaymentTypeCard          PaymentType = "CARD_PAYMENT"
	PaymentTypeWallet        PaymentType = "WALLET_PAYMENT"
	PaymentTypeCardAndWallet PaymentType = "CARD_AND_WALLET_PAYMENT"
	PaymentTypeBankTransfer  PaymentType = "BANK_TRANSFER"
	PaymentTypeAPM           PaymentType = "APM"
)

// PaymentPhase is the authorization phase of a card payment.
type PaymentPhase string

const (
	PaymentPhaseAuth     PaymentPhase = "AUTH"
	PaymentPhasePreAuth  PaymentPhase = "PRE_AUTH"
	PaymentPhasePostAuth PaymentPhase = "POST_AUTH"
)
