package services

import (
	"gorm.io/gorm"

	"github.com/Fabken42/study-quiz/models"
)

// ReconcileTerms replaces a list's metadata and term collection with a
// client-submitted version, atomically. Submitted entries with an ID update
// the matching term in place (mastery statuses untouched); entries without
// one become new terms owned by the editor. Existing terms omitted from the
// submission are deleted together with their mastery statuses. The final
// term order is exactly the submitted order.
//
// Any validation, authorization or persistence failure rolls the whole
// operation back; the list's prior state survives untouched.
func (s *Service) ReconcileTerms(publicID string, editorID uint, name, description string, isPublic bool, submitted []TermInput) (*models.TermList, error) {
	name, description, err := validateListMeta(name, description)
	if err != nil {
		return nil, err
	}
	if err := validateTermBatch(submitted); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		list, err := loadListByPublicID(tx, publicID)
		if err != nil {
			return err
		}
		if list.AuthorID != editorID {
			return &AuthorizationError{Action: "update this term list"}
		}

		existing := make(map[uint]*models.Term, len(list.Terms))
		for i := range list.Terms {
			existing[list.Terms[i].ID] = &list.Terms[i]
		}

		// Existing ids absent from the submission are deleted explicitly,
		// statuses first, so omission-as-deletion never leaks orphan rows.
		submittedIDs := make(map[uint]bool, len(submitted))
		for _, in := range submitted {
			if in.ID != 0 {
				if _, ok := existing[in.ID]; !ok {
					return &ValidationError{Field: "terms", Reason: "unknown term in submission"}
				}
				submittedIDs[in.ID] = true
			}
		}
		var orphanIDs []uint
		for id := range existing {
			if !submittedIDs[id] {
				orphanIDs = append(orphanIDs, id)
			}
		}
		if len(orphanIDs) > 0 {
			if err := tx.Where("term_id IN ?", orphanIDs).Delete(&models.MasteryStatus{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orphanIDs).Delete(&models.Term{}).Error; err != nil {
				return err
			}
		}

		for position, in := range submitted {
			if in.ID != 0 {
				term := existing[in.ID]
				term.Term = in.Term
				term.Definition = in.Definition
				term.Reminder = in.Reminder
				term.Position = position
				if err := tx.Model(term).Select("term", "definition", "reminder", "position").
					Updates(term).Error; err != nil {
					return err
				}
			} else {
				term := models.Term{
					ListID:     list.ID,
					AuthorID:   editorID,
					Position:   position,
					Term:       in.Term,
					Definition: in.Definition,
					Reminder:   in.Reminder,
				}
				if err := tx.Create(&term).Error; err != nil {
					return err
				}
			}
		}

		list.ListName = name
		list.Description = description
		list.IsPublic = isPublic
		return tx.Model(list).Select("list_name", "description", "is_public").
			Updates(list).Error
	})
	if err != nil {
		return nil, err
	}

	return loadListByPublicID(s.DB, publicID)
}
