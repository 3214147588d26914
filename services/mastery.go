package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Fabken42/study-quiz/models"
)

// RecordAnswer applies one quiz outcome to the (term, user) mastery score.
// A first answer creates the row at 5 (correct) or 3 (incorrect); every
// later answer moves the existing score one step, clamped to [1, 7].
func (s *Service) RecordAnswer(termID, userID uint, correct bool) (*models.MasteryStatus, error) {
	var status models.MasteryStatus
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var term models.Term
		if err := tx.First(&term, termID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "term"}
			}
			return err
		}

		err := tx.Where("term_id = ? AND user_id = ?", termID, userID).First(&status).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status = models.MasteryStatus{
				TermID: termID,
				UserID: userID,
				Score:  models.InitialScore(correct),
			}
			return tx.Create(&status).Error
		}
		if err != nil {
			return err
		}

		status.Score = models.NextScore(status.Score, correct)
		return tx.Model(&models.MasteryStatus{}).
			Where("term_id = ? AND user_id = ?", termID, userID).
			Update("score", status.Score).Error
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ResetMastery deletes every mastery status userID holds on the list's
// terms. Other users' statuses on the same terms are untouched.
func (s *Service) ResetMastery(publicID string, userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		list, err := loadListByPublicID(tx, publicID)
		if err != nil {
			return err
		}
		return tx.Where("user_id = ? AND term_id IN (?)",
			userID,
			tx.Model(&models.Term{}).Select("id").Where("list_id = ?", list.ID),
		).Delete(&models.MasteryStatus{}).Error
	})
}
