package unit

import (
	"context"
	"testing"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func int32ptr(v int32) *int32 {
	return &v
}

func newQuoteFixture() (*MockQuoteRepo, *MockPartRequestRepo, *MockOrgRepo, *MockActivityRepo, *MockEmailService, service.QuoteService) {
	quoteRepo := new(MockQuoteRepo)
	reqRepo := new(MockPartRequestRepo)
	orgRepo := new(MockOrgRepo)
	actRepo := new(MockActivityRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewQuoteService(quoteRepo, reqRepo, orgRepo, actRepo, emailSvc)
	return quoteRepo, reqRepo, orgRepo, actRepo, emailSvc, svc
}

func TestQuoteService_SubmitQuote(t *testing.T) {
	ctx := context.Background()
	actor := service.Actor{ID: 7, Name: "Sue Parts"}

	t.Run("Success computes total and transitions request", func(t *testing.T) {
		quoteRepo, reqRepo, orgRepo, actRepo, emailSvc, svc := newQuoteFixture()

		req := &domain.PartRequest{ID: 1, OrgID: 10, GarageName: "Main St Garage", Status: domain.RequestStatusOpen}
		reqRepo.On("GetByID", ctx, int32(1)).Return(req, nil)
		orgRepo.On("GetByID", ctx, int32(20)).Return(&domain.Organization{ID: 20, Name: "ACME Parts", Type: domain.OrgTypeSupplier}, nil)
		orgRepo.On("GetByID", ctx, int32(10)).Return(&domain.Organization{ID: 10, Name: "Main St Garage", Email: "garage@example.com"}, nil)
		quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.PartQuote")).Return(nil)
		reqRepo.On("UpdateStatus", ctx, int32(1), domain.RequestStatusQuoted).Return(nil)
		actRepo.On("Create", ctx, mock.AnythingOfType("*domain.ActivityLogEntry")).Return(nil)
		emailSvc.On("SendQuoteReceived", ctx, "garage@example.com", "Main St Garage", "ACME Parts", "Brake pads", int32(7500)).Return(nil)

		quote, budgetExceeded, err := svc.SubmitQuote(ctx, actor, 20, 1, service.QuoteInput{
			PartName:  "Brake pads",
			Quantity:  3,
			UnitPrice: 2500,
		})
		assert.NoError(t, err)
		assert.False(t, budgetExceeded)
		assert.Equal(t, int32(7500), quote.TotalPriceCents)
		assert.Equal(t, quote.Quantity*quote.UnitPriceCents, quote.TotalPriceCents)
		assert.Equal(t, domain.QuoteStatusPending, quote.Status)
		assert.Equal(t, "ACME Parts", quote.SupplierName)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), quote.ValidUntil, time.Minute)
		quoteRepo.AssertExpectations(t)
		reqRepo.AssertExpectations(t)
	})

	t.Run("Budget exceeded flags warning but still creates quote", func(t *testing.T) {
		quoteRepo, reqRepo, orgRepo, actRepo, _, svc := newQuoteFixture()

		req := &domain.PartRequest{ID: 2, OrgID: 10, GarageName: "Main St Garage", Quantity: 2,
			MaxPriceCents: int32ptr(10000), Status: domain.RequestStatusOpen}
		reqRepo.On("GetByID", ctx, int32(2)).Return(req, nil)
		orgRepo.On("GetByID", ctx, int32(20)).Return(&domain.Organization{ID: 20, Name: "ACME Parts"}, nil)
		orgRepo.On("GetByID", ctx, int32(10)).Return(&domain.Organization{ID: 10, Name: "Main St Garage"}, nil)
		quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.PartQuote")).Return(nil)
		reqRepo.On("UpdateStatus", ctx, int32(2), domain.RequestStatusQuoted).Return(nil)
		actRepo.On("Create", ctx, mock.AnythingOfType("*domain.ActivityLogEntry")).Return(nil)

		// 2 x $60.00 = $120.00 against a $100.00 ceiling
		quote, budgetExceeded, err := svc.SubmitQuote(ctx, actor, 20, 2, service.QuoteInput{
			PartName:  "Alternator",
			Quantity:  2,
			UnitPrice: 6000,
		})
		assert.NoError(t, err)
		assert.True(t, budgetExceeded)
		assert.Equal(t, int32(12000), quote.TotalPriceCents)
	})

	t.Run("Quoted request stays quotable without second transition", func(t *testing.T) {
		quoteRepo, reqRepo, orgRepo, actRepo, _, svc := newQuoteFixture()

		req := &domain.PartRequest{ID: 3, OrgID: 10, GarageName: "Main St Garage", Status: domain.RequestStatusQuoted}
		reqRepo.On("GetByID", ctx, int32(3)).Return(req, nil)
		orgRepo.On("GetByID", ctx, int32(21)).Return(&domain.Organization{ID: 21, Name: "Budget Parts"}, nil)
		orgRepo.On("GetByID", ctx, int32(10)).Return(&domain.Organization{ID: 10, Name: "Main St Garage"}, nil)
		quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.PartQuote")).Return(nil)
		actRepo.On("Create", ctx, mock.AnythingOfType("*domain.ActivityLogEntry")).Return(nil)

		_, _, err := svc.SubmitQuote(ctx, actor, 21, 3, service.QuoteInput{
			PartName:  "Brake pads",
			Quantity:  1,
			UnitPrice: 3000,
		})
		assert.NoError(t, err)
		reqRepo.AssertNotCalled(t, "UpdateStatus", ctx, int32(3), domain.RequestStatusQuoted)
	})

	t.Run("Closed request rejects quote", func(t *testing.T) {
		_, reqRepo, _, _, _, svc := newQuoteFixture()

		req := &domain.PartRequest{ID: 4, OrgID: 10, Status: domain.RequestStatusAccepted}
		reqRepo.On("GetByID", ctx, int32(4)).Return(req, nil)

		_, _, err := svc.SubmitQuote(ctx, actor, 20, 4, service.QuoteInput{
			PartName:  "Brake pads",
			Quantity:  1,
			UnitPrice: 3000,
		})
		assert.ErrorIs(t, err, service.ErrRequestNotQuotable)
	})

	t.Run("Validation failures", func(t *testing.T) {
		_, _, _, _, _, svc := newQuoteFixture()

		_, _, err := svc.SubmitQuote(ctx, actor, 20, 1, service.QuoteInput{PartName: "", Quantity: 1, UnitPrice: 100})
		assert.Error(t, err)
		var vErr *service.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "part_name", vErr.Field)

		_, _, err = svc.SubmitQuote(ctx, actor, 20, 1, service.QuoteInput{PartName: "Pads", Quantity: 0, UnitPrice: 100})
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "quantity", vErr.Field)

		_, _, err = svc.SubmitQuote(ctx, actor, 20, 1, service.QuoteInput{PartName: "Pads", Quantity: 1, UnitPrice: -5})
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "unit_price_cents", vErr.Field)

		// quantity x unit price must stay within int32 cents
		_, _, err = svc.SubmitQuote(ctx, actor, 20, 1, service.QuoteInput{PartName: "Pads", Quantity: 500000, UnitPrice: 10000})
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "quantity", vErr.Field)
	})
}

func TestQuoteService_AcceptQuote(t *testing.T) {
	ctx := context.Background()
	actor := service.Actor{ID: 3, Name: "Garage Admin"}

	t.Run("Accept settles request and rejects competitors", func(t *testing.T) {
		quoteRepo, reqRepo, _, actRepo, _, svc := newQuoteFixture()

		quote := &domain.PartQuote{ID: 5, RequestID: 1, SupplierName: "ACME Parts", Status: domain.QuoteStatusPending}
		quoteRepo.On("GetByID", ctx, int32(5)).Return(quote, nil)
		reqRepo.On("GetByID", ctx, int32(1)).Return(&domain.PartRequest{ID: 1, OrgID: 10, Status: domain.RequestStatusQuoted}, nil)
		quoteRepo.On("UpdateStatus", ctx, int32(5), domain.QuoteStatusAccepted).Return(nil)
		quoteRepo.On("RejectPendingForRequest", ctx, int32(1), int32(5)).Return(nil)
		reqRepo.On("UpdateStatus", ctx, int32(1), domain.RequestStatusAccepted).Return(nil)
		actRepo.On("Create", ctx, mock.AnythingOfType("*domain.ActivityLogEntry")).Return(nil)

		accepted, err := svc.AcceptQuote(ctx, actor, 10, 5)
		assert.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusAccepted, accepted.Status)
		quoteRepo.AssertExpectations(t)
		reqRepo.AssertExpectations(t)
	})

	t.Run("Accept refuses expired quote", func(t *testing.T) {
		quoteRepo, reqRepo, _, _, _, svc := newQuoteFixture()

		quote := &domain.PartQuote{ID: 6, RequestID: 1, Status: domain.QuoteStatusExpired}
		quoteRepo.On("GetByID", ctx, int32(6)).Return(quote, nil)
		reqRepo.On("GetByID", ctx, int32(1)).Return(&domain.PartRequest{ID: 1, OrgID: 10, Status: domain.RequestStatusQuoted}, nil)

		_, err := svc.AcceptQuote(ctx, actor, 10, 6)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("Accept refuses foreign organization", func(t *testing.T) {
		quoteRepo, reqRepo, _, _, _, svc := newQuoteFixture()

		quote := &domain.PartQuote{ID: 7, RequestID: 1, Status: domain.QuoteStatusPending}
		quoteRepo.On("GetByID", ctx, int32(7)).Return(quote, nil)
		reqRepo.On("GetByID", ctx, int32(1)).Return(&domain.PartRequest{ID: 1, OrgID: 99, Status: domain.RequestStatusQuoted}, nil)

		_, err := svc.AcceptQuote(ctx, actor, 10, 7)
		assert.ErrorIs(t, err, service.ErrWrongOrganization)
	})
}

func TestQuoteService_RejectQuote(t *testing.T) {
	ctx := context.Background()
	actor := service.Actor{ID: 3, Name: "Garage Admin"}

	t.Run("Reject leaves request status alone", func(t *testing.T) {
		quoteRepo, reqRepo, _, actRepo, _, svc := newQuoteFixture()

		quote := &domain.PartQuote{ID: 8, RequestID: 1, SupplierName: "ACME Parts", Status: domain.QuoteStatusPending}
		quoteRepo.On("GetByID", ctx, int32(8)).Return(quote, nil)
		reqRepo.On("GetByID", ctx, int32(1)).Return(&domain.PartRequest{ID: 1, OrgID: 10, Status: domain.RequestStatusQuoted}, nil)
		quoteRepo.On("UpdateStatus", ctx, int32(8), domain.QuoteStatusRejected).Return(nil)
		actRepo.On("Create", ctx, mock.AnythingOfType("*domain.ActivityLogEntry")).Return(nil)

		rejected, err := svc.RejectQuote(ctx, actor, 10, 8)
		assert.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusRejected, rejected.Status)
		reqRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
