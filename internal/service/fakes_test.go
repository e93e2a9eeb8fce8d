package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type memQuestions struct {
	questions []domain.Question
	nextID    int
	err       error
}

func newMemQuestions(questions ...domain.Question) *memQuestions {
	r := &memQuestions{nextID: 1}
	for _, q := range questions {
		if q.ID >= r.nextID {
			r.nextID = q.ID + 1
		}
		r.questions = append(r.questions, q)
	}
	return r
}

func (r *memQuestions) filter(keep func(domain.Question) bool) ([]domain.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Question{}
	for _, q := range r.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestions) List(ctx context.Context) ([]domain.Question, error) {
	return r.filter(func(domain.Question) bool { return true })
}

func (r *memQuestions) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool { return q.Category == categoryID })
}

func (r *memQuestions) Search(ctx context.Context, term string) ([]domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q domain.Question) bool { return strings.Contains(strings.ToLower(q.Question), term) })
}

func ids(questions []domain.Question, err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out, nil
}

func (r *memQuestions) ListIDs(ctx context.Context) ([]int, error) {
	return ids(r.List(ctx))
}

func (r *memQuestions) ListIDsByCategory(ctx context.Context, categoryID int) ([]int, error) {
	return ids(r.ListByCategory(ctx, categoryID))
}

func (r *memQuestions) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *memQuestions) Create(ctx context.Context, question *domain.Question) error {
	if r.err != nil {
		return r.err
	}
	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

func (r *memQuestions) Delete(ctx context.Context, id int) error {
	i := slices.IndexFunc(r.questions, func(q domain.Question) bool { return q.ID == id })
	if i < 0 {
		return domain.ErrQuestionNotFound
	}
	r.questions = slices.Delete(r.questions, i, i+1)
	return nil
}

type memCategories struct {
	categories []domain.Category
}

func (r *memCategories) List(ctx context.Context) ([]domain.Category, error) {
	return r.categories, nil
}

func (r *memCategories) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

type event struct {
	Type    string
	Payload any
}

type recordingPublisher struct {
	events []event
	err    error
}

func (p *recordingPublisher) Publish(eventType string, payload any) error {
	p.events = append(p.events, event{Type: eventType, Payload: payload})
	return p.err
}

var errStore = errors.New("store unavailable")

var stockCategories = []domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// seedQuestions creates n questions spread round-robin over categories 1..3.
func seedQuestions(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, domain.Question{
			ID:         i,
			Question:   "Question number " + strings.Repeat("i", i),
			Answer:     "answer",
			Category:   (i-1)%3 + 1,
			Difficulty: (i-1)%5 + 1,
		})
	}
	return questions
}
