package models

import "gorm.io/gorm"

// Mastery score bounds. A score tracks one user's recent quiz performance on
// one term: 1 is worst, 7 is best, 4 is the neutral starting point.
const (
	ScoreMin     = 1
	ScoreMax     = 7
	ScoreDefault = 4

	// First-answer scores sit further from neutral than a ±1 step because a
	// first observation carries more information than a repeat one.
	ScoreFirstCorrect   = 5
	ScoreFirstIncorrect = 3
)

// Term represents a single term/definition/reminder card inside a list
type Term struct {
	gorm.Model
	ListID   uint     `gorm:"not null;index"`
	TermList TermList `gorm:"foreignKey:ListID" json:"-"`
	AuthorID uint     `gorm:"not null"`

	// Position is the term's index in the list's authored order.
	Position   int    `gorm:"not null"`
	Term       string `gorm:"not null;size:100"`
	Definition string `gorm:"not null;size:100"`
	Reminder   string `gorm:"size:100"`

	Statuses []MasteryStatus `gorm:"foreignKey:TermID"`
}

// MasteryStatus is one user's mastery score for one term. The composite key
// guarantees at most one row per (term, user) pair.
type MasteryStatus struct {
	TermID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	Score  int  `gorm:"not null;default:4"`
}

// ClampScore forces s into the valid [ScoreMin, ScoreMax] range.
func ClampScore(s int) int {
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}
	return s
}

// InitialScore returns the score recorded for a user's very first answer on a
// term: 5 for a correct answer, 3 for an incorrect one.
func InitialScore(correct bool) int {
	if correct {
		return ScoreFirstCorrect
	}
	return ScoreFirstIncorrect
}

// NextScore moves an existing score one step up or down, saturating at the
// bounds.
func NextScore(current int, correct bool) int {
	if correct {
		return ClampScore(current + 1)
	}
	return ClampScore(current - 1)
}

// ScoreFor returns the recorded score for userID, or ScoreDefault when the
// user has never answered this term.
func (t *Term) ScoreFor(userID uint) int {
	for _, s := range t.Statuses {
		if s.UserID == userID {
			return s.Score
		}
	}
	return ScoreDefault
}

// MasteredByAnyUser reports whether any user has reached ScoreMax on this
// term. The quiz filter keys off any user's progress, not the caller's.
func (t *Term) MasteredByAnyUser() bool {
	for _, s := range t.Statuses {
		if s.Score == ScoreMax {
			return true
		}
	}
	return false
}
