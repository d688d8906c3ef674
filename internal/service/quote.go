package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/logger"
	"fixwize-backend/internal/repository"
)

type quoteService struct {
	quoteRepo repository.QuoteRepository
	reqRepo   repository.PartRequestRepository
	orgRepo   repository.OrganizationRepository
	actRepo   repository.ActivityRepository
	emailSvc  EmailService
}

func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	reqRepo repository.PartRequestRepository,
	orgRepo repository.OrganizationRepository,
	actRepo repository.ActivityRepository,
	emailSvc EmailService,
) QuoteService {
	return &quoteService{
		quoteRepo: quoteRepo,
		reqRepo:   reqRepo,
		orgRepo:   orgRepo,
		actRepo:   actRepo,
		emailSvc:  emailSvc,
	}
}

func validateQuoteInput(input QuoteInput) error {
	if strings.TrimSpace(input.PartName) == "" {
		return invalidField("part_name", "part name is required")
	}
	if input.Quantity < 1 {
		return invalidField("quantity", "quantity must be at least 1")
	}
	if input.UnitPrice < 0 {
		return invalidField("unit_price_cents", "unit price cannot be negative")
	}
	// Totals are stored as int32 cents; quantity times unit price must fit.
	if int64(input.Quantity)*int64(input.UnitPrice) > math.MaxInt32 {
		return invalidField("quantity", "total price is out of range")
	}
	return nil
}

func (s *quoteService) SubmitQuote(ctx context.Context, actor Actor, supplierID, requestID int32, input QuoteInput) (*domain.PartQuote, bool, error) {
	if err := validateQuoteInput(input); err != nil {
		return nil, false, err
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get part request: %w", err)
	}
	// Multiple suppliers may quote the same request, so a request that is
	// already quoted stays quotable. Anything past that is closed.
	if req.Status != domain.RequestStatusOpen && req.Status != domain.RequestStatusQuoted {
		return nil, false, ErrRequestNotQuotable
	}

	supplier, err := s.orgRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get supplier: %w", err)
	}

	now := time.Now()
	quote := &domain.PartQuote{
		RequestID:       requestID,
		SupplierID:      supplierID,
		SupplierName:    supplier.Name,
		PartName:        input.PartName,
		PartNumber:      input.PartNumber,
		Quantity:        input.Quantity,
		UnitPriceCents:  input.UnitPrice,
		TotalPriceCents: input.Quantity * input.UnitPrice,
		Availability:    input.Availability,
		DeliveryTime:    input.DeliveryTime,
		Warranty:        input.Warranty,
		Notes:           input.Notes,
		Status:          domain.QuoteStatusPending,
		ValidUntil:      now.AddDate(0, 0, domain.QuoteValidityDays),
		CreatedAt:       now,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, false, fmt.Errorf("failed to create quote: %w", err)
	}

	// First quote moves the request from open to quoted.
	if req.Status == domain.RequestStatusOpen {
		if err := s.reqRepo.UpdateStatus(ctx, requestID, domain.RequestStatusQuoted); err != nil {
			return nil, false, fmt.Errorf("failed to update request status: %w", err)
		}
	}

	s.record(ctx, actor, supplierID, domain.ActivityActionCreate,
		fmt.Sprintf("Quoted %s for request #%d", quote.PartName, requestID))

	if garage, err := s.orgRepo.GetByID(ctx, req.OrgID); err == nil && garage.Email != "" {
		if err := s.emailSvc.SendQuoteReceived(ctx, garage.Email, req.GarageName, supplier.Name, quote.PartName, quote.TotalPriceCents); err != nil {
			logger.Warn("Failed to send quote notification", "request_id", requestID, "error", err)
		}
	}

	budgetExceeded := req.MaxPriceCents != nil && quote.TotalPriceCents > *req.MaxPriceCents
	return quote, budgetExceeded, nil
}

func (s *quoteService) AcceptQuote(ctx context.Context, actor Actor, orgID, quoteID int32) (*domain.PartQuote, error) {
	quote, req, err := s.getQuoteForOrg(ctx, orgID, quoteID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionQuote(quote.Status, domain.QuoteStatusAccepted) {
		return nil, ErrInvalidTransition
	}
	if !domain.CanTransitionRequest(req.Status, domain.RequestStatusAccepted) {
		return nil, ErrInvalidTransition
	}

	if err := s.quoteRepo.UpdateStatus(ctx, quoteID, domain.QuoteStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to accept quote: %w", err)
	}
	// Accepting one quote settles the request: competing pending quotes
	// are rejected.
	if err := s.quoteRepo.RejectPendingForRequest(ctx, quote.RequestID, quoteID); err != nil {
		return nil, fmt.Errorf("failed to reject competing quotes: %w", err)
	}
	if err := s.reqRepo.UpdateStatus(ctx, quote.RequestID, domain.RequestStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	quote.Status = domain.QuoteStatusAccepted
	s.record(ctx, actor, orgID, domain.ActivityActionUpdate,
		fmt.Sprintf("Accepted quote #%d from %s", quote.ID, quote.SupplierName))
	return quote, nil
}

func (s *quoteService) RejectQuote(ctx context.Context, actor Actor, orgID, quoteID int32) (*domain.PartQuote, error) {
	quote, _, err := s.getQuoteForOrg(ctx, orgID, quoteID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionQuote(quote.Status, domain.QuoteStatusRejected) {
		return nil, ErrInvalidTransition
	}

	if err := s.quoteRepo.UpdateStatus(ctx, quoteID, domain.QuoteStatusRejected); err != nil {
		return nil, fmt.Errorf("failed to reject quote: %w", err)
	}

	quote.Status = domain.QuoteStatusRejected
	s.record(ctx, actor, orgID, domain.ActivityActionUpdate,
		fmt.Sprintf("Rejected quote #%d from %s", quote.ID, quote.SupplierName))
	return quote, nil
}

func (s *quoteService) ListQuotesForRequest(ctx context.Context, requestID int32) ([]domain.PartQuote, error) {
	return s.quoteRepo.ListByRequest(ctx, requestID)
}

func (s *quoteService) ListSupplierQuotes(ctx context.Context, supplierID int32) ([]domain.PartQuote, error) {
	return s.quoteRepo.ListBySupplier(ctx, supplierID)
}

// getQuoteForOrg loads a quote and its request, checking the request belongs
// to the acting garage.
func (s *quoteService) getQuoteForOrg(ctx context.Context, orgID, quoteID int32) (*domain.PartQuote, *domain.PartRequest, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get quote: %w", err)
	}
	req, err := s.reqRepo.GetByID(ctx, quote.RequestID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get part request: %w", err)
	}
	if req.OrgID != orgID {
		return nil, nil, ErrWrongOrganization
	}
	return quote, req, nil
}

func (s *quoteService) record(ctx context.Context, actor Actor, orgID int32, action domain.ActivityAction, description string) {
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
