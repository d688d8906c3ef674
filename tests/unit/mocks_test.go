package unit

import (
	"context"
	"time"

	"fixwize-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockOrgRepo
type MockOrgRepo struct {
	mock.Mock
}

func (m *MockOrgRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrgRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrgRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrgRepo) Update(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// MockPartRequestRepo
type MockPartRequestRepo struct {
	mock.Mock
}

func (m *MockPartRequestRepo) Create(ctx context.Context, req *domain.PartRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockPartRequestRepo) GetByID(ctx context.Context, id int32) (*domain.PartRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartRequest), args.Error(1)
}
func (m *MockPartRequestRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.PartRequest, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.PartRequest), args.Error(1)
}
func (m *MockPartRequestRepo) SearchOpen(ctx context.Context, term string, urgency domain.RequestUrgency) ([]domain.PartRequest, error) {
	args := m.Called(ctx, term, urgency)
	return args.Get(0).([]domain.PartRequest), args.Error(1)
}
func (m *MockPartRequestRepo) UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockPartRequestRepo) ListOpenNeededBefore(ctx context.Context, cutoff time.Time) ([]domain.PartRequest, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.PartRequest), args.Error(1)
}

// MockQuoteRepo
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, quote *domain.PartQuote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
func (m *MockQuoteRepo) GetByID(ctx context.Context, id int32) (*domain.PartQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartQuote), args.Error(1)
}
func (m *MockQuoteRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.PartQuote, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.PartQuote), args.Error(1)
}
func (m *MockQuoteRepo) ListBySupplier(ctx context.Context, supplierID int32) ([]domain.PartQuote, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]domain.PartQuote), args.Error(1)
}
func (m *MockQuoteRepo) UpdateStatus(ctx context.Context, id int32, status domain.QuoteStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockQuoteRepo) RejectPendingForRequest(ctx context.Context, requestID, keepID int32) error {
	args := m.Called(ctx, requestID, keepID)
	return args.Error(0)
}
func (m *MockQuoteRepo) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id int32) (*domain.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}
func (m *MockMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}
func (m *MockMemberRepo) GetByUsername(ctx context.Context, orgID int32, username string) (*domain.TeamMember, error) {
	args := m.Called(ctx, orgID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}
func (m *MockMemberRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.TeamMember, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}
func (m *MockMemberRepo) Update(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMemberRepo) TouchLastActive(ctx context.Context, id int32, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockActivityRepo) Search(ctx context.Context, orgID int32, filter domain.ActivityFilter, now time.Time) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, orgID, filter, now)
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuoteReceived(ctx context.Context, to, garageName, supplierName, partName string, totalCents int32) error {
	args := m.Called(ctx, to, garageName, supplierName, partName, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendMemberWelcome(ctx context.Context, to, name, username, orgName string) error {
	args := m.Called(ctx, to, name, username, orgName)
	return args.Error(0)
}
func (m *MockEmailService) SendNeededByReminder(ctx context.Context, to, garageName, description string, neededBy time.Time) error {
	args := m.Called(ctx, to, garageName, description, neededBy)
	return args.Error(0)
}
