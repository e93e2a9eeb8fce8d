package service

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuizSettings controls how quiz categories are resolved
type QuizSettings struct {
	// AllCategoriesType is the category type meaning "any category"
	AllCategoriesType string
	// CategoryOffset is added to the requested category id
	CategoryOffset int
}

// QuizService implements the domain.QuizService interface
type QuizService struct {
	questions domain.QuestionRepository
	settings  QuizSettings
	pick      func(n int) int
}

// NewQuizService creates a new quiz service
func NewQuizService(questions domain.QuestionRepository, settings QuizSettings) *QuizService {
	return &QuizService{
		questions: questions,
		settings:  settings,
		pick:      rand.Intn,
	}
}

// NextQuestion picks a random question of the requested category that
// is not among the previous questions.
func (s *QuizService) NextQuestion(ctx context.Context, req domain.QuizRequest) (*domain.Question, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return nil, ErrInvalidQuizCategory
	}

	ids, err := s.candidates(ctx, *req.QuizCategory)
	if err != nil {
		return nil, err
	}

	for _, prev := range req.PreviousQuestions {
		i := slices.Index(ids, prev)
		if i < 0 {
			return nil, fmt.Errorf("%w: %d", ErrUnknownPreviousQuestion, prev)
		}
		ids = slices.Delete(ids, i, i+1)
	}

	if len(ids) == 0 {
		return nil, ErrNoQuestionsLeft
	}

	return s.questions.GetByID(ctx, ids[s.pick(len(ids))])
}

func (s *QuizService) candidates(ctx context.Context, category domain.QuizCategory) ([]int, error) {
	if category.Type == s.settings.AllCategoriesType {
		return s.questions.ListIDs(ctx)
	}
	return s.questions.ListIDsByCategory(ctx, int(*category.ID)+s.settings.CategoryOffset)
}
