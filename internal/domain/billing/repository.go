package billing

import (
	"context"
	"time"

	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// QuoteFilter defines filtering options for quote queries
type QuoteFilter struct {
	shared.Filter
	ClientID *uuid.UUID
	Status   *QuoteStatus
	FromDate *time.Time
	ToDate   *time.Time
}

// QuoteRepository defines the interface for quote persistence
type QuoteRepository interface {
	// FindByID finds a quote by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)

	// FindByNumber finds a quote by its document number
	FindByNumber(ctx context.Context, number string) (*Quote, error)

	// FindAll finds quotes with filtering, sorted by date descending
	FindAll(ctx context.Context, filter QuoteFilter) ([]Quote, error)

	// Save creates or updates a quote
	Save(ctx context.Context, quote *Quote) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, quote *Quote) error

	// Delete deletes a quote
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts quotes matching the filter
	Count(ctx context.Context, filter QuoteFilter) (int64, error)

	// CountByClient counts quotes belonging to a client
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}

// InvoiceFilter defines filtering options for invoice queries
type InvoiceFilter struct {
	shared.Filter
	ClientID *uuid.UUID
	QuoteID  *uuid.UUID
	Status   *InvoiceStatus
	Kind     *InvoiceKind
	FromDate *time.Time
	ToDate   *time.Time
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by its document number
	FindByNumber(ctx context.Context, number string) (*Invoice, error)

	// FindByQuote finds all invoices linked to a quote (deposits and final)
	FindByQuote(ctx context.Context, quoteID uuid.UUID) ([]Invoice, error)

	// FindAll finds invoices with filtering, sorted by date descending
	FindAll(ctx context.Context, filter InvoiceFilter) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, invoice *Invoice) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter InvoiceFilter) (int64, error)

	// CountByClient counts invoices belonging to a client
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}

// PaymentFilter defines filtering options for payment queries
type PaymentFilter struct {
	shared.Filter
	InvoiceID *uuid.UUID
	ClientID  *uuid.UUID
	Method    *PaymentMethod
	FromDate  *time.Time
	ToDate    *time.Time
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByInvoice finds all payments recorded against an invoice
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)

	// FindAll finds payments with filtering, sorted by date descending
	FindAll(ctx context.Context, filter PaymentFilter) ([]Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// Count counts payments matching the filter
	Count(ctx context.Context, filter PaymentFilter) (int64, error)

	// CountByClient counts payments belonging to a client
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}

// NumberAllocator hands out document numbers from a transactional counter.
// Next must never return the same number twice for a given spec and scope,
// even under concurrent allocation.
type NumberAllocator interface {
	// Next allocates the next number for the given sequence at time now
	Next(ctx context.Context, spec SequenceSpec, now time.Time) (string, error)
}
