package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fabken42/study-quiz/models"
)

func TestRecordAnswerFirstObservationMovesFurther(t *testing.T) {
	s := newTestService(t)
	author := createTestUser(t, s, "alice")
	player := createTestUser(t, s, "bob")
	list := seedList(t, s, author.ID, 4)
	termID := list.Terms[0].ID

	// First answer on a fresh pair creates the row at 5, not 4+1.
	status, err := s.RecordAnswer(termID, player.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.ScoreFirstCorrect, status.Score)

	// The follow-up uses the ±1 rule: 5 - 1 = 4, not the fresh-creation 3.
	status, err = s.RecordAnswer(termID, player.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 4, status.Score)
}

func TestRecordAnswerFirstIncorrectStartsAtThree(t *testing.T) {
	s := newTestService(t)
	author := createTestUser(t, s, "alice")
	player := createTestUser(t, s, "bob")
	list := seedList(t, s, author.ID, 4)

	status, err := s.RecordAnswer(list.Terms[0].ID, player.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ScoreFirstIncorrect, status.Score)
}

func TestRecordAnswerSaturatesAtBounds(t *testing.T) {
	s := newTestService(t)
	author := createTestUser(t, s, "alice")
	player := createTestUser(t, s, "bob")
	list := seedList(t, s, author.ID, 4)
	termID := list.Terms[0].ID

	var status *models.MasteryStatus
	var err error
	for i := 0; i < 10; i++ {
		status, err = s.RecordAnswer(termID, player.ID, true)
		require.NoError(t, err)
	}
	assert.Equal(t, models.ScoreMax, status.Score)

	for i := 0; i < 20; i++ {
		status, err = s.RecordAnswer(termID, player.ID, false)
		require.NoError(t, err)
	}
	assert.Equal(t, models.ScoreMin, status.Score)
}

func TestRecordAnswerUnknownTerm(t *testing.T) {
	s := newTestService(t)
	player := createTestUser(t, s, "bob")

	_, err := s.RecordAnswer(9999, player.ID, true)
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestRecordAnswerKeepsUsersIndependent(t *testing.T) {
	s := newTestService(t)
	author := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	carol := createTestUser(t, s, "carol")
	list := seedList(t, s, author.ID, 4)
	termID := list.Terms[0].ID

	_, err := s.RecordAnswer(termID, bob.ID, true)
	require.NoError(t, err)
	status, err := s.RecordAnswer(termID, carol.ID, false)
	require.NoError(t, err)

	assert.Equal(t, models.ScoreFirstIncorrect, status.Score)

	var bobStatus models.MasteryStatus
	require.NoError(t, s.DB.Where("term_id = ? AND user_id = ?", termID, bob.ID).First(&bobStatus).Error)
	assert.Equal(t, models.ScoreFirstCorrect, bobStatus.Score)
}

func TestResetMasteryScopedToUserAndList(t *testing.T) {
	s := newTestService(t)
	author := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	carol := createTestUser(t, s, "carol")

	list := seedList(t, s, author.ID, 4)
	otherList := seedList(t, s, author.ID, 4)

	for _, term := range list.Terms {
		_, err := s.RecordAnswer(term.ID, bob.ID, true)
		require.NoError(t, err)
	}
	_, err := s.RecordAnswer(list.Terms[0].ID, carol.ID, true)
	require.NoError(t, err)
	_, err = s.RecordAnswer(otherList.Terms[0].ID, bob.ID, true)
	require.NoError(t, err)

	require.NoError(t, s.ResetMastery(list.PublicID, bob.ID))

	var bobOnList int64
	listTermIDs := []uint{list.Terms[0].ID, list.Terms[1].ID, list.Terms[2].ID, list.Terms[3].ID}
	s.DB.Model(&models.MasteryStatus{}).Where("user_id = ? AND term_id IN ?", bob.ID, listTermIDs).Count(&bobOnList)
	assert.Zero(t, bobOnList, "bob's statuses on the reset list should be gone")

	var carolOnList int64
	s.DB.Model(&models.MasteryStatus{}).Where("user_id = ?", carol.ID).Count(&carolOnList)
	assert.EqualValues(t, 1, carolOnList, "carol's statuses must survive bob's reset")

	var bobElsewhere int64
	s.DB.Model(&models.MasteryStatus{}).Where("user_id = ? AND term_id = ?", bob.ID, otherList.Terms[0].ID).Count(&bobElsewhere)
	assert.EqualValues(t, 1, bobElsewhere, "bob's statuses on other lists must survive")
}

func TestScoreForDefaultsToNeutral(t *testing.T) {
	term := models.Term{}
	assert.Equal(t, models.ScoreDefault, term.ScoreFor(42))
}
