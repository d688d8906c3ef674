package handlers

import (
	"context"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) SubmitQuote(ctx context.Context, actor service.Actor, supplierID, requestID int32, input service.QuoteInput) (*domain.PartQuote, bool, error) {
	args := m.Called(ctx, actor, supplierID, requestID, input)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.PartQuote), args.Bool(1), args.Error(2)
}
func (m *MockQuoteService) AcceptQuote(ctx context.Context, actor service.Actor, orgID, quoteID int32) (*domain.PartQuote, error) {
	args := m.Called(ctx, actor, orgID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartQuote), args.Error(1)
}
func (m *MockQuoteService) RejectQuote(ctx context.Context, actor service.Actor, orgID, quoteID int32) (*domain.PartQuote, error) {
	args := m.Called(ctx, actor, orgID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartQuote), args.Error(1)
}
func (m *MockQuoteService) ListQuotesForRequest(ctx context.Context, requestID int32) ([]domain.PartQuote, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartQuote), args.Error(1)
}
func (m *MockQuoteService) ListSupplierQuotes(ctx context.Context, supplierID int32) ([]domain.PartQuote, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartQuote), args.Error(1)
}

// MockRequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) CreateRequest(ctx context.Context, actor service.Actor, orgID int32, input service.RequestInput) (*domain.PartRequest, error) {
	args := m.Called(ctx, actor, orgID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartRequest), args.Error(1)
}
func (m *MockRequestService) GetRequest(ctx context.Context, id int32) (*domain.PartRequest, []domain.PartQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.PartRequest), args.Get(1).([]domain.PartQuote), args.Error(2)
}
func (m *MockRequestService) ListRequests(ctx context.Context, orgID int32) ([]domain.PartRequest, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartRequest), args.Error(1)
}
func (m *MockRequestService) SearchOpenRequests(ctx context.Context, term string, urgency domain.RequestUrgency) ([]domain.PartRequest, error) {
	args := m.Called(ctx, term, urgency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartRequest), args.Error(1)
}
func (m *MockRequestService) MarkFulfilled(ctx context.Context, actor service.Actor, orgID, requestID int32) (*domain.PartRequest, error) {
	args := m.Called(ctx, actor, orgID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartRequest), args.Error(1)
}

// MockTeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) AddMember(ctx context.Context, actor service.Actor, orgID int32, input service.MemberInput) (*domain.TeamMember, error) {
	args := m.Called(ctx, actor, orgID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}
func (m *MockTeamService) UpdateMember(ctx context.Context, actor service.Actor, orgID, memberID int32, input service.MemberInput) (*domain.TeamMember, error) {
	args := m.Called(ctx, actor, orgID, memberID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}
func (m *MockTeamService) DeleteMember(ctx context.Context, actor service.Actor, orgID, memberID int32, confirmed bool) error {
	args := m.Called(ctx, actor, orgID, memberID, confirmed)
	return args.Error(0)
}
func (m *MockTeamService) GetMember(ctx context.Context, id int32) (*domain.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}
func (m *MockTeamService) ListMembers(ctx context.Context, orgID int32) ([]domain.TeamMember, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

// MockActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockActivityService) Search(ctx context.Context, orgID int32, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, orgID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.TeamMember, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.TeamMember), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) Logout(ctx context.Context, actor service.Actor, orgID int32) error {
	args := m.Called(ctx, actor, orgID)
	return args.Error(0)
}
