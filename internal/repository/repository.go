package repository

import (
	"context"
	"time"

	"fixwize-backend/internal/domain"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
}

type PartRequestRepository interface {
	Create(ctx context.Context, req *domain.PartRequest) error
	GetByID(ctx context.Context, id int32) (*domain.PartRequest, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.PartRequest, error)

	// SearchOpen returns open requests whose description or garage name
	// contains term (case-insensitive), optionally narrowed to one urgency
	// tier. An empty term and RequestUrgencyAll are identity filters.
	SearchOpen(ctx context.Context, term string, urgency domain.RequestUrgency) ([]domain.PartRequest, error)

	UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error
	ListOpenNeededBefore(ctx context.Context, cutoff time.Time) ([]domain.PartRequest, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.PartQuote) error
	GetByID(ctx context.Context, id int32) (*domain.PartQuote, error)
	ListByRequest(ctx context.Context, requestID int32) ([]domain.PartQuote, error)
	ListBySupplier(ctx context.Context, supplierID int32) ([]domain.PartQuote, error)
	UpdateStatus(ctx context.Context, id int32, status domain.QuoteStatus) error

	// RejectPendingForRequest rejects every pending quote on a request
	// except the one identified by keepID.
	RejectPendingForRequest(ctx context.Context, requestID, keepID int32) error

	// ExpirePending marks pending quotes whose validity lapsed before now
	// as expired and returns the number of quotes touched.
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, id int32) (*domain.TeamMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error)
	GetByUsername(ctx context.Context, orgID int32, username string) (*domain.TeamMember, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.TeamMember, error)
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id int32) error
	TouchLastActive(ctx context.Context, id int32, at time.Time) error
}

type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLogEntry) error

	// Search returns the matching entries for one organization, sorted by
	// timestamp descending. All filter predicates are conjunctive.
	Search(ctx context.Context, orgID int32, filter domain.ActivityFilter, now time.Time) ([]domain.ActivityLogEntry, error)
}
