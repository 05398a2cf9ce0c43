package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/facturation/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNumberAllocator implements NumberAllocator on the document_sequences
// table. The increment uses UPDATE ... RETURNING so the new value is read
// under the row lock; two concurrent allocations can never observe the same
// counter value. Called inside WithinTx, the increment commits or rolls back
// together with the document it numbers.
type GormNumberAllocator struct {
	db *gorm.DB
}

// NewGormNumberAllocator creates a new GormNumberAllocator
func NewGormNumberAllocator(db *gorm.DB) *GormNumberAllocator {
	return &GormNumberAllocator{db: db}
}

// Next allocates the next document number for the given sequence at time now
func (r *GormNumberAllocator) Next(ctx context.Context, spec billing.SequenceSpec, now time.Time) (string, error) {
	if !spec.DocumentType.IsValid() {
		return "", shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Type de document invalide: %s", spec.DocumentType))
	}

	scope := spec.ScopeKey(now)
	db := dbFromContext(ctx, r.db).WithContext(ctx)

	// First allocation of a scope races on the insert; the loser of the
	// race retries the increment against the row the winner created.
	for attempt := 0; attempt < 3; attempt++ {
		var model models.DocumentSequenceModel
		result := db.Model(&model).
			Clauses(clause.Returning{Columns: []clause.Column{{Name: "value"}}}).
			Where("document_type = ? AND scope_key = ?", spec.DocumentType.String(), scope).
			Update("value", gorm.Expr("value + 1"))
		if result.Error != nil {
			return "", result.Error
		}
		if result.RowsAffected > 0 {
			return spec.Format(scope, model.Value), nil
		}

		seed := models.DocumentSequenceModel{
			DocumentType: spec.DocumentType.String(),
			ScopeKey:     scope,
			Value:        1,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := db.Create(&seed).Error; err == nil {
			return spec.Format(scope, 1), nil
		}
	}

	return "", fmt.Errorf("failed to allocate %s number for scope %s", spec.DocumentType, scope)
}

// Ensure GormNumberAllocator implements NumberAllocator
var _ billing.NumberAllocator = (*GormNumberAllocator)(nil)
