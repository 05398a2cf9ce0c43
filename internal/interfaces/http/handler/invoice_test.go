package handler

import (
	"net/http"
	"testing"

	"github.com/facturation/backend/internal/application/billing"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupInvoiceRouter(service InvoiceService) *gin.Engine {
	h := NewInvoiceHandler(service)
	r := gin.New()
	r.GET("/factures", h.List)
	r.GET("/factures/:id", h.Get)
	r.POST("/factures/:id/payer", h.MarkPaid)
	return r
}

func TestInvoiceHandler_Get(t *testing.T) {
	service := new(MockInvoiceService)
	r := setupInvoiceRouter(service)

	id := uuid.New()
	service.On("GetByID", mock.Anything, id).
		Return(&billing.InvoiceResponse{ID: id, Number: "FACT-2026-0001"}, nil)

	w := performRequest(r, http.MethodGet, "/factures/"+id.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, string(env.Data), "FACT-2026-0001")
}

func TestInvoiceHandler_Get_NotFound(t *testing.T) {
	service := new(MockInvoiceService)
	r := setupInvoiceRouter(service)

	id := uuid.New()
	service.On("GetByID", mock.Anything, id).
		Return(nil, shared.NewDomainError("NOT_FOUND", "Facture introuvable"))

	w := performRequest(r, http.MethodGet, "/factures/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_List_KindFilter(t *testing.T) {
	service := new(MockInvoiceService)
	r := setupInvoiceRouter(service)

	service.On("List", mock.Anything, mock.MatchedBy(func(f billing.InvoiceListFilter) bool {
		return f.Kind != nil && *f.Kind == "Acompte" && f.QuoteID != nil
	})).Return([]billing.InvoiceResponse{}, int64(0), nil)

	quoteID := uuid.New()
	w := performRequest(r, http.MethodGet, "/factures?kind=Acompte&quote_id="+quoteID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestInvoiceHandler_MarkPaid(t *testing.T) {
	service := new(MockInvoiceService)
	r := setupInvoiceRouter(service)

	id := uuid.New()
	service.On("MarkPaid", mock.Anything, id).
		Return(&billing.InvoiceResponse{ID: id, Status: "Payée"}, nil)

	w := performRequest(r, http.MethodPost, "/factures/"+id.String()+"/payer", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, string(env.Data), "Payée")
}

func TestInvoiceHandler_MarkPaid_AlreadyPaid(t *testing.T) {
	service := new(MockInvoiceService)
	r := setupInvoiceRouter(service)

	id := uuid.New()
	service.On("MarkPaid", mock.Anything, id).
		Return(nil, shared.NewDomainError("INVALID_STATE", "La facture est déjà payée"))

	w := performRequest(r, http.MethodPost, "/factures/"+id.String()+"/payer", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
