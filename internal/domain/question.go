package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves every question ordered by id
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves the questions of one category ordered by id
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// Search retrieves questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]Question, error)

	// ListIDs retrieves the ids of every question
	ListIDs(ctx context.Context) ([]int, error)

	// ListIDsByCategory retrieves the ids of the questions of one category
	ListIDsByCategory(ctx context.Context, categoryID int) ([]int, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create inserts a question and fills in its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPage is one page of an ordered question listing
type QuestionPage struct {
	Questions       []Question
	TotalQuestions  int
	Categories      map[int]string
	CurrentCategory *int
}

// AnswerResult reports whether a submitted answer matched
type AnswerResult struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// QuestionService defines the question and category use cases
type QuestionService interface {
	Categories(ctx context.Context) ([]Category, error)
	ListQuestions(ctx context.Context, page int) (*QuestionPage, error)
	QuestionsByCategory(ctx context.Context, categoryID, page int) (*QuestionPage, error)
	SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error)
	CreateQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id int) error
	CheckAnswer(ctx context.Context, id int, answer string) (*AnswerResult, error)
}
