package billing

import (
	"context"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/facturation/backend/internal/domain/partner"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentService records payments and reconciles invoices
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	invoiceRepo billing.InvoiceRepository
	clientRepo  partner.ClientRepository
	txManager   shared.TxManager
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	invoiceRepo billing.InvoiceRepository,
	clientRepo partner.ClientRepository,
	txManager shared.TxManager,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
	}
}

// Create records a payment and settles the invoice. Any payment, whatever
// its amount, marks the invoice Payée; the write of the payment row and the
// status change commit together.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Facture introuvable")
	}

	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client introuvable")
	}

	date, err := billing.ParsePaymentDate(req.Date)
	if err != nil {
		return nil, err
	}

	payment, err := billing.NewPayment(req.InvoiceID, req.ClientID, req.Amount, date, billing.PaymentMethod(req.Method), req.Reference, req.Notes)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.paymentRepo.Save(txCtx, payment); err != nil {
			return err
		}
		invoice.MarkPaid()
		return s.invoiceRepo.SaveWithLock(txCtx, invoice)
	})
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Paiement introuvable")
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves payments sorted by date descending
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, int64, error) {
	domainFilter := billing.PaymentFilter{
		Filter:    shared.DefaultFilter(),
		InvoiceID: filter.InvoiceID,
		ClientID:  filter.ClientID,
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = "date"
	if filter.Method != nil {
		method := billing.PaymentMethod(*filter.Method)
		if !method.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Moyen de paiement invalide")
		}
		domainFilter.Method = &method
	}

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}
	return responses, total, nil
}
