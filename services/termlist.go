package services

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/Fabken42/study-quiz/models"
)

// CreateTermList creates an empty list owned by authorID. Terms are only ever
// added through ReconcileTerms.
func (s *Service) CreateTermList(authorID uint, name, description, category string, isPublic bool) (*models.TermList, error) {
	name, description, err := validateListMeta(name, description)
	if err != nil {
		return nil, err
	}
	if !models.ValidCategory(category) {
		return nil, &ValidationError{Field: "category", Reason: "unknown category"}
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	list := models.TermList{
		PublicID:    publicID,
		AuthorID:    authorID,
		ListName:    name,
		Description: description,
		Category:    category,
		IsPublic:    isPublic,
	}
	if err := s.DB.Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// GetTermList returns a list with its ordered terms. Private lists are only
// visible to their author; viewerID is zero for anonymous callers.
func (s *Service) GetTermList(publicID string, viewerID uint) (*models.TermList, error) {
	list, err := loadListByPublicID(s.DB, publicID)
	if err != nil {
		return nil, err
	}
	if !list.IsPublic && list.AuthorID != viewerID {
		return nil, &AuthorizationError{Action: "view this term list"}
	}
	if err := s.DB.Model(list).Association("UsersWhoFavourited").Find(&list.UsersWhoFavourited); err != nil {
		return nil, err
	}
	return list, nil
}

// PopularLists returns public lists ordered by favourite count, optionally
// restricted to one category.
func (s *Service) PopularLists(category string, limit int) ([]models.TermList, error) {
	query := s.DB.
		Model(&models.TermList{}).
		Select("term_lists.*, (SELECT COUNT(*) FROM term_list_favourites f WHERE f.term_list_id = term_lists.id) AS favourite_count").
		Where("is_public = ?", true).
		Order("favourite_count DESC").
		Limit(limit).
		Preload("Author").
		Preload("Terms", func(db *gorm.DB) *gorm.DB {
			return db.Order("terms.position ASC")
		})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var lists []models.TermList
	if err := query.Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// RecentLists resolves a client-held list of recently visited public IDs,
// capped at limit. Private and unknown IDs are silently dropped.
func (s *Service) RecentLists(publicIDs []string, limit int) ([]models.TermList, error) {
	var lists []models.TermList
	err := s.DB.
		Where("public_id IN ? AND is_public = ?", publicIDs, true).
		Limit(limit).
		Preload("Author").
		Preload("Terms", func(db *gorm.DB) *gorm.DB {
			return db.Order("terms.position ASC")
		}).
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// UserLists returns the lists a user authored and the lists they favourited.
// Other users only see the public subset of each.
func (s *Service) UserLists(username string, viewerID uint) (created, favourited []models.TermList, err error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, nil, &NotFoundError{Resource: "user"}
	}

	createdQuery := s.DB.
		Where("author_id = ?", user.ID).
		Preload("Author").
		Preload("Terms", func(db *gorm.DB) *gorm.DB {
			return db.Order("terms.position ASC")
		})
	if viewerID != user.ID {
		createdQuery = createdQuery.Where("is_public = ?", true)
	}
	if err := createdQuery.Find(&created).Error; err != nil {
		return nil, nil, err
	}

	favQuery := s.DB.
		Joins("JOIN term_list_favourites f ON f.term_list_id = term_lists.id").
		Where("f.user_id = ?", user.ID).
		Preload("Author").
		Preload("Terms", func(db *gorm.DB) *gorm.DB {
			return db.Order("terms.position ASC")
		})
	if viewerID != user.ID {
		favQuery = favQuery.Where("is_public = ?", true)
	}
	if err := favQuery.Find(&favourited).Error; err != nil {
		return nil, nil, err
	}
	return created, favourited, nil
}

// DeleteTermList removes a list, its terms and their mastery statuses in one
// transaction. Only the author may delete.
func (s *Service) DeleteTermList(publicID string, requesterID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		list, err := loadListByPublicID(tx, publicID)
		if err != nil {
			return err
		}
		if list.AuthorID != requesterID {
			return &AuthorizationError{Action: "delete this term list"}
		}

		if err := tx.Where("term_id IN (?)", tx.Model(&models.Term{}).Select("id").Where("list_id = ?", list.ID)).
			Delete(&models.MasteryStatus{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", list.ID).Delete(&models.Term{}).Error; err != nil {
			return err
		}
		if err := tx.Model(list).Association("UsersWhoFavourited").Clear(); err != nil {
			return err
		}
		return tx.Delete(list).Error
	})
}

// ToggleFavourite flips userID's membership in the list's favourites. Two
// calls in a row restore the original state. Any authenticated user may
// favourite any list.
func (s *Service) ToggleFavourite(publicID string, userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		list, err := loadListByPublicID(tx, publicID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Table("term_list_favourites").
			Where("term_list_id = ? AND user_id = ?", list.ID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return tx.Exec("DELETE FROM term_list_favourites WHERE term_list_id = ? AND user_id = ?", list.ID, userID).Error
		}
		return tx.Exec("INSERT INTO term_list_favourites (term_list_id, user_id) VALUES (?, ?)", list.ID, userID).Error
	})
}
