package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// memStore backs both repositories in handler tests
type memStore struct {
	categories []domain.Category
	questions  []domain.Question
	nextID     int
	searchErr  error
}

func newMemStore(nQuestions int) *memStore {
	s := &memStore{
		categories: []domain.Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "Geography"},
			{ID: 4, Type: "History"},
			{ID: 5, Type: "Entertainment"},
			{ID: 6, Type: "Sports"},
		},
		nextID: 1,
	}
	for i := 1; i <= nQuestions; i++ {
		s.questions = append(s.questions, domain.Question{
			ID:         i,
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   (i-1)%3 + 1,
			Difficulty: (i-1)%5 + 1,
		})
		s.nextID = i + 1
	}
	return s
}

type memQuestions struct{ *memStore }

type memCategories struct{ *memStore }

func (r memQuestions) filter(keep func(domain.Question) bool) []domain.Question {
	out := []domain.Question{}
	for _, q := range r.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func (r memQuestions) List(ctx context.Context) ([]domain.Question, error) {
	return r.filter(func(domain.Question) bool { return true }), nil
}

func (r memQuestions) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

func (r memQuestions) Search(ctx context.Context, term string) ([]domain.Question, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	term = strings.ToLower(term)
	return r.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func questionIDs(questions []domain.Question) []int {
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func (r memQuestions) ListIDs(ctx context.Context) ([]int, error) {
	qs, _ := r.List(ctx)
	return questionIDs(qs), nil
}

func (r memQuestions) ListIDsByCategory(ctx context.Context, categoryID int) ([]int, error) {
	qs, _ := r.ListByCategory(ctx, categoryID)
	return questionIDs(qs), nil
}

func (r memQuestions) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (r memQuestions) Create(ctx context.Context, q *domain.Question) error {
	q.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *q)
	return nil
}

func (r memQuestions) Delete(ctx context.Context, id int) error {
	i := slices.IndexFunc(r.questions, func(q domain.Question) bool { return q.ID == id })
	if i < 0 {
		return domain.ErrQuestionNotFound
	}
	r.questions = slices.Delete(r.questions, i, i+1)
	return nil
}

func (r memCategories) List(ctx context.Context) ([]domain.Category, error) {
	return r.categories, nil
}

func (r memCategories) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

var errUnavailable = errors.New("unavailable")
