package service

import (
	"context"
	"time"

	"fixwize-backend/internal/domain"
)

// Actor identifies the logged-in member performing an operation, for
// activity-log attribution.
type Actor struct {
	ID   int32
	Name string
}

type QuoteInput struct {
	PartName     string `json:"part_name"`
	PartNumber   string `json:"part_number"`
	Quantity     int32  `json:"quantity"`
	UnitPrice    int32  `json:"unit_price_cents"`
	Availability string `json:"availability"`
	DeliveryTime string `json:"delivery_time"`
	Warranty     string `json:"warranty"`
	Notes        string `json:"notes"`
}

type RequestInput struct {
	Description string `json:"description"`
	Quantity    int32  `json:"quantity"`
	Urgency     string `json:"urgency"`
	MaxPrice    *int32 `json:"max_price_cents"`
	NeededBy    string `json:"needed_by"` // yyyy-mm-dd
}

type MemberInput struct {
	Name        string   `json:"name"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
	Password    string   `json:"password"`
}

type QuoteService interface {
	// SubmitQuote creates a pending quote against a request. The returned
	// bool reports a non-blocking budget-exceeded warning: the quote is
	// created even when the total is above the request's price ceiling.
	SubmitQuote(ctx context.Context, actor Actor, supplierID, requestID int32, input QuoteInput) (*domain.PartQuote, bool, error)
	AcceptQuote(ctx context.Context, actor Actor, orgID, quoteID int32) (*domain.PartQuote, error)
	RejectQuote(ctx context.Context, actor Actor, orgID, quoteID int32) (*domain.PartQuote, error)
	ListQuotesForRequest(ctx context.Context, requestID int32) ([]domain.PartQuote, error)
	ListSupplierQuotes(ctx context.Context, supplierID int32) ([]domain.PartQuote, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, actor Actor, orgID int32, input RequestInput) (*domain.PartRequest, error)
	GetRequest(ctx context.Context, id int32) (*domain.PartRequest, []domain.PartQuote, error)
	ListRequests(ctx context.Context, orgID int32) ([]domain.PartRequest, error)
	SearchOpenRequests(ctx context.Context, term string, urgency domain.RequestUrgency) ([]domain.PartRequest, error)
	MarkFulfilled(ctx context.Context, actor Actor, orgID, requestID int32) (*domain.PartRequest, error)
}

type TeamService interface {
	AddMember(ctx context.Context, actor Actor, orgID int32, input MemberInput) (*domain.TeamMember, error)
	UpdateMember(ctx context.Context, actor Actor, orgID, memberID int32, input MemberInput) (*domain.TeamMember, error)
	// DeleteMember refuses to act unless confirmed is set; deletion is
	// irreversible and must be explicitly acknowledged by the caller.
	DeleteMember(ctx context.Context, actor Actor, orgID, memberID int32, confirmed bool) error
	GetMember(ctx context.Context, id int32) (*domain.TeamMember, error)
	ListMembers(ctx context.Context, orgID int32) ([]domain.TeamMember, error)
}

type ActivityService interface {
	Record(ctx context.Context, entry *domain.ActivityLogEntry) error
	Search(ctx context.Context, orgID int32, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.TeamMember, string, string, error) // member, access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, actor Actor, orgID int32) error
}

type EmailService interface {
	SendQuoteReceived(ctx context.Context, to, garageName, supplierName, partName string, totalCents int32) error
	SendMemberWelcome(ctx context.Context, to, name, username, orgName string) error
	SendNeededByReminder(ctx context.Context, to, garageName, description string, neededBy time.Time) error
}
