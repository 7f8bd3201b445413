package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"rutero/internal/repositories"
	"rutero/pkg/utils"
)

// PreferenceProfile is the fixed six-slot reduction of a user's answers.
// Slot order mirrors the question order expected by the recommendation
// service; it is a positional wire contract, do not reorder.
type PreferenceProfile struct {
	Transport     string
	Diet          string
	Budget        string
	Companionship string
	ActivityLevel string
	FoodInclusion string
}

const noAnswersSummary = "No hay respuestas registradas."

type PreferenceServiceInterface interface {
	// BuildPreferenceProfile reduces the stored answers to the normalized
	// profile. A user without answers gets an empty profile with no error;
	// a fetch failure returns the empty profile together with
	// ErrPreferenceFetchFailed so the caller can decide to continue.
	BuildPreferenceProfile(ctx context.Context, userID int) (PreferenceProfile, error)

	// BuildAnswerSummary renders the raw answers as "Question: Answer"
	// pairs joined by "; " for prompt embedding. Same failure contract as
	// BuildPreferenceProfile, with the fallback text already substituted.
	BuildAnswerSummary(ctx context.Context, userID int) (string, error)
}

type PreferenceService struct {
	answerRepo repositories.AnswerRepository
}

func NewPreferenceService(answerRepo repositories.AnswerRepository) PreferenceServiceInterface {
	return &PreferenceService{answerRepo: answerRepo}
}

func (s *PreferenceService) BuildPreferenceProfile(ctx context.Context, userID int) (PreferenceProfile, error) {
	if userID <= 0 {
		return PreferenceProfile{}, utils.ErrInvalidInput
	}

	answers, err := s.answerRepo.ListAnswersByUserID(ctx, userID)
	if err != nil {
		log.Printf("preference fetch failed for user %d: %v", userID, err)
		return PreferenceProfile{}, utils.ErrPreferenceFetchFailed
	}

	var slots [6]string
	for i := range answers {
		if i >= len(slots) {
			break
		}
		slots[i] = NormalizeAnswer(answers[i].Answer)
	}

	return PreferenceProfile{
		Transport:     slots[0],
		Diet:          slots[1],
		Budget:        slots[2],
		Companionship: slots[3],
		ActivityLevel: slots[4],
		FoodInclusion: slots[5],
	}, nil
}

func (s *PreferenceService) BuildAnswerSummary(ctx context.Context, userID int) (string, error) {
	if userID <= 0 {
		return noAnswersSummary, utils.ErrInvalidInput
	}

	answers, err := s.answerRepo.ListAnswersByUserID(ctx, userID)
	if err != nil {
		log.Printf("preference fetch failed for user %d: %v", userID, err)
		return noAnswersSummary, utils.ErrPreferenceFetchFailed
	}
	if len(answers) == 0 {
		return noAnswersSummary, nil
	}

	pairs := make([]string, 0, len(answers))
	for _, a := range answers {
		pairs = append(pairs, fmt.Sprintf("%s: %s", a.Question.QuestionText, a.Answer))
	}
	return strings.Join(pairs, "; "), nil
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeAnswer lowercases, folds accented letters to their base Latin
// letter and strips everything outside [a-z0-9 ]. Idempotent.
func NormalizeAnswer(s string) string {
	s = strings.ToLower(s)
	if folded, _, err := transform.String(accentFolder, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
