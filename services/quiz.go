package services

import (
	"math/rand/v2"

	"github.com/Fabken42/study-quiz/models"
)

// MinQuizTerms is the smallest pool a quiz can run on: one correct
// definition plus three distinct decoys per round.
const MinQuizTerms = 4

// QuizRound pairs one term with four definition choices: the term's own
// definition plus three decoys drawn from other terms, in shuffled order.
type QuizRound struct {
	Term    models.Term `json:"term"`
	Choices []string    `json:"choices"`
}

// samplePool loads and filters a list's terms, then shuffles the eligible
// pool and draws the session's terms. When rounds exceeds the pool size the
// selection wraps: round i draws pool term i mod n, so every term appears
// either floor(rounds/n) or floor(rounds/n)+1 times.
func (s *Service) samplePool(publicID string, includeMastered bool, rounds int) (selected, pool []models.Term, err error) {
	list, err := loadListByPublicID(s.DB, publicID)
	if err != nil {
		return nil, nil, err
	}

	pool = list.Terms
	if !includeMastered {
		// A term leaves the pool once any user reaches the max score, not
		// just the requesting user.
		eligible := pool[:0:0]
		for _, term := range pool {
			if !term.MasteredByAnyUser() {
				eligible = append(eligible, term)
			}
		}
		pool = eligible
	}

	if len(pool) < MinQuizTerms {
		return nil, nil, &InsufficientTermsError{Available: len(pool)}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	selected = make([]models.Term, 0, rounds)
	for i := 0; i < rounds; i++ {
		selected = append(selected, pool[i%len(pool)])
	}
	return selected, pool, nil
}

// SampleQuizTerms draws the terms for a play session. When includeMastered
// is false, terms where any user has reached the max score are excluded.
func (s *Service) SampleQuizTerms(publicID string, includeMastered bool, rounds int) ([]models.Term, error) {
	selected, _, err := s.samplePool(publicID, includeMastered, rounds)
	return selected, err
}

// QuizRoundsFor is the play-session entry point: sample the session's terms
// and pair each with its four definition choices.
func (s *Service) QuizRoundsFor(publicID string, includeMastered bool, rounds int) ([]QuizRound, error) {
	selected, pool, err := s.samplePool(publicID, includeMastered, rounds)
	if err != nil {
		return nil, err
	}
	return BuildQuizRounds(selected, pool), nil
}

// BuildQuizRounds attaches definition choices to each selected term. Decoys
// come from shuffling the other pool terms' definitions and taking three;
// the pool must already satisfy the MinQuizTerms check.
func BuildQuizRounds(selected, pool []models.Term) []QuizRound {
	rounds := make([]QuizRound, 0, len(selected))
	for _, term := range selected {
		others := make([]string, 0, len(pool)-1)
		for _, other := range pool {
			if other.ID != term.ID {
				others = append(others, other.Definition)
			}
		}
		rand.Shuffle(len(others), func(i, j int) {
			others[i], others[j] = others[j], others[i]
		})

		choices := append([]string{term.Definition}, others[:3]...)
		rand.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})
		rounds = append(rounds, QuizRound{Term: term, Choices: choices})
	}
	return rounds
}
