package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Fabken42/study-quiz/models"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.TermList{}, &models.Term{}, &models.MasteryStatus{}))

	return New(db)
}

func createTestUser(t *testing.T, s *Service, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, s.DB.Create(&user).Error)
	return user
}

// seedList creates a list for authorID and fills it with n generated terms
// through the reconciler.
func seedList(t *testing.T, s *Service, authorID uint, n int) *models.TermList {
	t.Helper()

	list, err := s.CreateTermList(authorID, "animals", "common animals", "biology", true)
	require.NoError(t, err)

	terms := make([]TermInput, 0, n)
	for i := 0; i < n; i++ {
		terms = append(terms, TermInput{
			Term:       fmt.Sprintf("term %d", i),
			Definition: fmt.Sprintf("definition %d", i),
		})
	}
	list, err = s.ReconcileTerms(list.PublicID, authorID, list.ListName, list.Description, list.IsPublic, terms)
	require.NoError(t, err)
	require.Len(t, list.Terms, n)
	return list
}
