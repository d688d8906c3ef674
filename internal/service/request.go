package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/logger"
	"fixwize-backend/internal/repository"
)

type requestService struct {
	reqRepo   repository.PartRequestRepository
	quoteRepo repository.QuoteRepository
	orgRepo   repository.OrganizationRepository
	actRepo   repository.ActivityRepository
}

func NewRequestService(
	reqRepo repository.PartRequestRepository,
	quoteRepo repository.QuoteRepository,
	orgRepo repository.OrganizationRepository,
	actRepo repository.ActivityRepository,
) RequestService {
	return &requestService{
		reqRepo:   reqRepo,
		quoteRepo: quoteRepo,
		orgRepo:   orgRepo,
		actRepo:   actRepo,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, actor Actor, orgID int32, input RequestInput) (*domain.PartRequest, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, invalidField("description", "description is required")
	}
	if input.Quantity < 1 {
		return nil, invalidField("quantity", "quantity must be at least 1")
	}
	urgency := domain.RequestUrgency(input.Urgency)
	if !urgency.Valid() {
		return nil, invalidField("urgency", "urgency must be low, medium or high")
	}
	if input.MaxPrice != nil && *input.MaxPrice < 0 {
		return nil, invalidField("max_price_cents", "price ceiling cannot be negative")
	}
	neededBy, err := time.Parse("2006-01-02", input.NeededBy)
	if err != nil {
		return nil, invalidField("needed_by", "expected yyyy-mm-dd")
	}

	garage, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	req := &domain.PartRequest{
		OrgID:         orgID,
		GarageName:    garage.Name,
		Description:   input.Description,
		Quantity:      input.Quantity,
		Urgency:       urgency,
		MaxPriceCents: input.MaxPrice,
		NeededBy:      neededBy,
		RequestedDate: time.Now(),
		Status:        domain.RequestStatusOpen,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create part request: %w", err)
	}

	s.record(ctx, actor, orgID, domain.ActivityActionCreate,
		fmt.Sprintf("Requested %dx %s", req.Quantity, req.Description))
	return req, nil
}

func (s *requestService) GetRequest(ctx context.Context, id int32) (*domain.PartRequest, []domain.PartQuote, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	quotes, err := s.quoteRepo.ListByRequest(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return req, quotes, nil
}

func (s *requestService) ListRequests(ctx context.Context, orgID int32) ([]domain.PartRequest, error) {
	return s.reqRepo.ListByOrg(ctx, orgID)
}

func (s *requestService) SearchOpenRequests(ctx context.Context, term string, urgency domain.RequestUrgency) ([]domain.PartRequest, error) {
	if urgency != domain.RequestUrgencyAll && !urgency.Valid() {
		return nil, invalidField("urgency", "urgency must be all, low, medium or high")
	}
	return s.reqRepo.SearchOpen(ctx, term, urgency)
}

func (s *requestService) MarkFulfilled(ctx context.Context, actor Actor, orgID, requestID int32) (*domain.PartRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get part request: %w", err)
	}
	if req.OrgID != orgID {
		return nil, ErrWrongOrganization
	}
	if !domain.CanTransitionRequest(req.Status, domain.RequestStatusFulfilled) {
		return nil, ErrInvalidTransition
	}
	if err := s.reqRepo.UpdateStatus(ctx, requestID, domain.RequestStatusFulfilled); err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	req.Status = domain.RequestStatusFulfilled
	s.record(ctx, actor, orgID, domain.ActivityActionUpdate,
		fmt.Sprintf("Marked request #%d fulfilled", requestID))
	return req, nil
}

func (s *requestService) record(ctx context.Context, actor Actor, orgID int32, action domain.ActivityAction, description string) {
	entry := &domain.ActivityLogEntry{
		OrgID:       orgID,
		UserID:      actor.ID,
		UserName:    actor.Name,
		Action:      action,
		Description: description,
	}
	if err := s.actRepo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to write activity entry", "action", action, "error", err)
	}
}
