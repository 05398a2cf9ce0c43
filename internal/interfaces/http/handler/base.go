package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/facturation/backend/internal/domain/shared"
	"github.com/facturation/backend/internal/infrastructure/logger"
	"github.com/facturation/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// BaseHandler provides common response helpers for all handlers
type BaseHandler struct{}

// Success sends a 200 response with data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with data and pagination metadata
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, meta dto.Meta) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, meta))
}

// Created sends a 201 response with data
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the status derived from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeInvalidInput, message))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, message))
}

// InternalError sends a 500 response and logs the underlying error
func (h *BaseHandler) InternalError(c *gin.Context, err error) {
	logger.L(c.Request.Context()).Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, "Une erreur interne est survenue"))
}

// HandleError maps a service error to the appropriate HTTP response.
// Domain errors keep their code, message and details; anything else is a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		if status == http.StatusInternalServerError && domainErr.Code != dto.ErrCodeInternal {
			// Unknown domain code - log it so the mapping table can be extended
			logger.L(c.Request.Context()).Warn("Unmapped domain error code",
				zap.String("code", domainErr.Code))
		}
		c.JSON(status, dto.NewErrorResponseWithDetails(domainErr.Code, domainErr.Message, domainErr.Details))
		return
	}
	h.InternalError(c, err)
}

// HandleBindingError sends a 400 response for a request binding failure,
// flattening validator errors into a readable message.
func (h *BaseHandler) HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fieldErrorMessage(fe))
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrCodeInvalidInput,
			"Requête invalide: "+strings.Join(fields, "; "),
			map[string]any{"fields": fields},
		))
		return
	}
	h.BadRequest(c, "Requête invalide: "+err.Error())
}

// fieldErrorMessage renders one validator error as "field: rule"
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " est obligatoire"
	case "email":
		return fe.Field() + " doit être une adresse email valide"
	case "min":
		return fe.Field() + " est trop court (minimum " + fe.Param() + ")"
	case "max":
		return fe.Field() + " est trop long (maximum " + fe.Param() + ")"
	default:
		return fe.Field() + " est invalide"
	}
}
