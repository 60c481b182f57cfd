package craftgate

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// SearchPaymentsRequest filters the payment-reporting search endpoint.
// Page and Size are always sent; optional filters are omitted from the
// query when left at their zero value.
type SearchPaymentsRequest struct {
	Page           int
	Size           int
	OrderID        string
	ConversationID string
	PaymentType    PaymentType
	PaymentStatus  PaymentStatus
	Currency       Currency
	MinPaidPrice   decimal.Decimal
	MaxPaidPrice   decimal.Decimal
}

func (r SearchPaymentsRequest) ToParameters() []Parameter {
	params := []Parameter{
		{"page", strconv.Itoa(r.Page)},
		{"size", strconv.Itoa(r.Size)},
	}
	if r.OrderID != "" {
		params = append(params, Parameter{"orderId", r.OrderID})
	}
	if r.ConversationID != "" {
		params = append(params, Parameter{"conversationId", r.ConversationID})
	}
	if r.PaymentType != "" {
		params = append(params, Parameter{"paymentType", string(r.PaymentType)})
	}
	if r.PaymentStatus != "" {
		params = append(params, Parameter{"paymentStatus", string(r.PaymentStatus)})
	}
	if r.Currency != "" {
		params = append(params, Parameter{"currency", string(r.Currency)})
	}
	if !r.MinPaidPrice.IsZero() {
		params = append(params, Parameter{"minPaidPrice", r.MinPaidPrice.String()})
	}
	if !r.MaxPaidPrice.IsZero() {
		params = append(params, Parameter{"maxPaidPrice", r.MaxPaidPrice.String()})
	}
	return params
}

// InstallmentListRequest queries the installment options available for
// a card BIN at a given price.
type InstallmentListRequest struct {
	BinNumber string
	Price     decimal.Decimal
	Currency  Currency
}

func (r InstallmentListRequest) ToParameters() []Parameter {
	params := []Parameter{
		{"binNumber", r.BinNumber},
		{"price", r.Price.String()},
	}
	if r.Currency != "" {
		params = append(params, Parameter{"currency", string(r.Currency)})
	}
	return params
}

// CreatePaymentRequest is the JSON body of a card payment call. It is
// passed as the payload to HeadersWithPayload and must be serialized by
// the transport layer exactly as signed.
type CreatePaymentRequest struct {
	Price          decimal.Decimal `json:"price"`
	PaidPrice      decimal.Decimal `json:"paidPrice"`
	Currency       Currency        `json:"currency"`
	PaymentPhase   PaymentPhase    `json:"paymentPhase,omitempty"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod,omitempty"`
	ConversationID string          `json:"conversationId,omitempty"`
	Installment    int             `json:"installment,omitempty"`
}
