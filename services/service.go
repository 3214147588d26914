// Package services holds the list synchronization and mastery engine: term
// validation, atomic list reconciliation, quiz sampling and the per-user
// mastery score state machine. Handlers stay thin; everything here is
// transport-agnostic and returns tagged errors.
package services

import (
	"errors"

	"github.com/Fabken42/study-quiz/models"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// loadListByPublicID fetches a list with its terms in authored order. Runs
// against tx so callers inside a transaction see their own writes.
func loadListByPublicID(tx *gorm.DB, publicID string) (*models.TermList, error) {
	var list models.TermList
	err := tx.
		Preload("Terms", func(db *gorm.DB) *gorm.DB {
			return db.Order("terms.position ASC")
		}).
		Preload("Terms.Statuses").
		Where("public_id = ?", publicID).
		First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "term list"}
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}
