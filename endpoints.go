package craftgate

const (
	// Payment
	EndpointCardPayments       = "/payment/v1/card-payments"
	EndpointCardPayment        = "/payment/v1/card-payments/" // append paymentID
	EndpointRefunds            = "/payment/v1/refunds"
	EndpointRefundTransactions = "/payment/v1/refund-transactions"

	// Reporting
	EndpointSearchPayments = "/payment-reporting/v1/payments"
	EndpointSearchRefunds  = "/payment-reporting/v1/refunds"

	// Installment
	EndpointInstallments = "/installment/v1/installments"
	EndpointBinNumbers   = "/installment/v1/bins/" // append binNumber

	// Onboarding
	EndpointMembers = "/onboarding/v1/members"
	EndpointMember  = "/onboarding/v1/members/" // append memberID
)
