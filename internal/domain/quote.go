package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending: {QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired},
}

// CanTransitionQuote reports whether a quote may move from one status to
// another. Only pending quotes move; accepted, rejected and expired are
// terminal.
func CanTransitionQuote(from, to QuoteStatus) bool {
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// QuoteValidityDays is the fixed validity window attached to every quote
// at submission time.
const QuoteValidityDays = 7

type PartQuote struct {
	ID              int32       `json:"id"`
	RequestID       int32       `json:"request_id"`
	SupplierID      int32       `json:"supplier_id"`
	SupplierName    string      `json:"supplier_name"`
	PartName        string      `json:"part_name"`
	PartNumber      string      `json:"part_number,omitempty"`
	Quantity        int32       `json:"quantity"`
	UnitPriceCents  int32       `json:"unit_price_cents"`
	TotalPriceCents int32       `json:"total_price_cents"`
	Availability    string      `json:"availability"`
	DeliveryTime    string      `json:"delivery_time"`
	Warranty        string      `json:"warranty"`
	Notes           string      `json:"notes"`
	Status          QuoteStatus `json:"status"`
	ValidUntil      time.Time   `json:"valid_until"`
	CreatedAt       time.Time   `json:"created_at"`
}
