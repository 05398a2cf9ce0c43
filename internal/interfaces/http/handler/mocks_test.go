package handler

import (
	"context"

	"github.com/facturation/backend/internal/application/billing"
	"github.com/facturation/backend/internal/application/company"
	"github.com/facturation/backend/internal/application/partner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockClientService is a mock implementation of ClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, req partner.CreateClientRequest) (*partner.ClientResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.ClientResponse), args.Error(1)
}

func (m *MockClientService) GetByID(ctx context.Context, id uuid.UUID) (*partner.ClientResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.ClientResponse), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context, filter partner.ClientListFilter) ([]partner.ClientResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]partner.ClientResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockClientService) Update(ctx context.Context, id uuid.UUID, req partner.UpdateClientRequest) (*partner.ClientResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.ClientResponse), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuoteService is a mock implementation of QuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Create(ctx context.Context, req billing.CreateQuoteRequest) (*billing.QuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.QuoteResponse), args.Error(1)
}

func (m *MockQuoteService) GetByID(ctx context.Context, id uuid.UUID) (*billing.QuoteResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.QuoteResponse), args.Error(1)
}

func (m *MockQuoteService) List(ctx context.Context, filter billing.QuoteListFilter) ([]billing.QuoteListItemResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]billing.QuoteListItemResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuoteService) UpdateStatus(ctx context.Context, id uuid.UUID, req billing.UpdateQuoteStatusRequest) (*billing.QuoteResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.QuoteResponse), args.Error(1)
}

// MockConversionService is a mock implementation of ConversionService
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, quoteID uuid.UUID) (*billing.ConversionResponse, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.ConversionResponse), args.Error(1)
}

// MockDepositService is a mock implementation of DepositService
type MockDepositService struct {
	mock.Mock
}

func (m *MockDepositService) Create(ctx context.Context, req billing.CreateDepositInvoiceRequest) (*billing.InvoiceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.InvoiceResponse), args.Error(1)
}

func (m *MockDepositService) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]billing.DepositResponse, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.DepositResponse), args.Error(1)
}

// MockInvoiceService is a mock implementation of InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*billing.InvoiceResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, filter billing.InvoiceListFilter) ([]billing.InvoiceResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]billing.InvoiceResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*billing.InvoiceResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.InvoiceResponse), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Create(ctx context.Context, req billing.CreatePaymentRequest) (*billing.PaymentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PaymentResponse), args.Error(1)
}

func (m *MockPaymentService) GetByID(ctx context.Context, id uuid.UUID) (*billing.PaymentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PaymentResponse), args.Error(1)
}

func (m *MockPaymentService) List(ctx context.Context, filter billing.PaymentListFilter) ([]billing.PaymentResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]billing.PaymentResponse), args.Get(1).(int64), args.Error(2)
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (*company.SettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.SettingsResponse), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, req company.UpdateSettingsRequest) (*company.SettingsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.SettingsResponse), args.Error(1)
}
