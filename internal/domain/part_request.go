package domain

import "time"

type RequestUrgency string

const (
	RequestUrgencyLow    RequestUrgency = "low"
	RequestUrgencyMedium RequestUrgency = "medium"
	RequestUrgencyHigh   RequestUrgency = "high"
)

// RequestUrgencyAll is the filter value that matches every urgency tier.
// It is never stored on a request.
const RequestUrgencyAll RequestUrgency = "all"

func (u RequestUrgency) Valid() bool {
	switch u {
	case RequestUrgencyLow, RequestUrgencyMedium, RequestUrgencyHigh:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "open"
	RequestStatusQuoted    RequestStatus = "quoted"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusFulfilled RequestStatus = "fulfilled"
)

// requestTransitions holds the one-directional status flow:
// open → quoted → {accepted, rejected}, accepted → fulfilled.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusOpen:     {RequestStatusQuoted},
	RequestStatusQuoted:   {RequestStatusAccepted, RequestStatusRejected},
	RequestStatusAccepted: {RequestStatusFulfilled},
}

// CanTransitionRequest reports whether a request may move from one status
// to another. Backward moves (e.g. fulfilled → open) are never allowed.
func CanTransitionRequest(from, to RequestStatus) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PartRequest struct {
	ID            int32          `json:"id"`
	OrgID         int32          `json:"org_id"`
	GarageName    string         `json:"garage_name"`
	Description   string         `json:"description"`
	Quantity      int32          `json:"quantity"`
	Urgency       RequestUrgency `json:"urgency"`
	MaxPriceCents *int32         `json:"max_price_cents,omitempty"`
	NeededBy      time.Time      `json:"needed_by"`
	RequestedDate time.Time      `json:"requested_date"`
	Status        RequestStatus  `json:"status"`
}
