package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// Difficulty bounds accepted on creation
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Event types published on question changes
const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// Publisher fans question change events out to listeners
type Publisher interface {
	Publish(eventType string, payload any) error
}

// QuestionService implements the domain.QuestionService interface
type QuestionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	events     Publisher
	log        *slog.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(questions domain.QuestionRepository, categories domain.CategoryRepository, events Publisher, log *slog.Logger) *QuestionService {
	return &QuestionService{
		questions:  questions,
		categories: categories,
		events:     events,
		log:        log,
	}
}

// Categories returns every category, failing when there are none
func (s *QuestionService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	return categories, nil
}

// ListQuestions returns one page of all questions with the category map
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*domain.QuestionPage, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	current := pagination.Paginate(questions, page)
	if len(current) == 0 {
		return nil, ErrPageNotFound
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.QuestionPage{
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     domain.CategoryMap(categories),
	}, nil
}

// QuestionsByCategory returns one page of a category's questions
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID, page int) (*domain.QuestionPage, error) {
	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrCategoryNotFound
	}

	current := pagination.Paginate(questions, page)
	if len(current) == 0 {
		return nil, ErrPageNotFound
	}

	return &domain.QuestionPage{
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: &categoryID,
	}, nil
}

// SearchQuestions returns one page of questions containing term.
// An empty page is a valid result.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) (*domain.QuestionPage, error) {
	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	return &domain.QuestionPage{
		Questions:      pagination.Paginate(questions, page),
		TotalQuestions: len(questions),
	}, nil
}

// CreateQuestion validates and stores a new question
func (s *QuestionService) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if err := s.validate(ctx, question); err != nil {
		return err
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return err
	}

	s.publish(EventQuestionCreated, question)
	return nil
}

// DeleteQuestion removes a question
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(EventQuestionDeleted, map[string]int{"id": id})
	return nil
}

// CheckAnswer compares a player's answer with the stored one
func (s *QuestionService) CheckAnswer(ctx context.Context, id int, answer string) (*domain.AnswerResult, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.AnswerResult{
		Correct: validation.IsCorrectAnswer(question.Answer, answer),
		Answer:  question.Answer,
	}, nil
}

func (s *QuestionService) validate(ctx context.Context, q *domain.Question) error {
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)

	switch {
	case q.Question == "":
		return fmt.Errorf("%w: question is required", ErrInvalidQuestion)
	case q.Answer == "":
		return fmt.Errorf("%w: answer is required", ErrInvalidQuestion)
	case q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty:
		return fmt.Errorf("%w: difficulty must be between %d and %d", ErrInvalidQuestion, MinDifficulty, MaxDifficulty)
	}

	if _, err := s.categories.GetByID(ctx, q.Category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return fmt.Errorf("%w: category %d does not exist", ErrInvalidQuestion, q.Category)
		}
		return err
	}
	return nil
}

func (s *QuestionService) publish(eventType string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		s.log.Warn("failed to publish event",
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
	}
}
