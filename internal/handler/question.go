package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question and category HTTP requests
type QuestionHandler struct {
	questions domain.QuestionService
	log       *slog.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions domain.QuestionService, log *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		log:       log,
	}
}

// Register registers the question and category routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.ListCategories)
	e.GET("/categories/:id/questions", h.ListCategoryQuestions)
	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	e.DELETE("/questions/:id", h.DeleteQuestion)
}

// CategoriesResponse lists category labels
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// QuestionListResponse is a page of all questions with the category map
type QuestionListResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[int]string    `json:"categories"`
	CurrentCategory *int              `json:"current_category"`
}

// QuestionPageResponse is a page of filtered questions
type QuestionPageResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *int              `json:"current_category"`
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string         `json:"question" validate:"required"`
	Answer     string         `json:"answer" validate:"required"`
	Category   domain.FlexInt `json:"category" validate:"required"`
	Difficulty domain.FlexInt `json:"difficulty" validate:"required,min=1,max=5"`
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// ListCategories handles GET /categories
func (h *QuestionHandler) ListCategories(c echo.Context) error {
	categories, err := h.questions.Categories(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCategories) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Categories: domain.CategoryTypes(categories),
	})
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page := pagination.ParsePage(c.QueryParam("page"))

	result, err := h.questions.ListQuestions(c.Request().Context(), page)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, QuestionListResponse{
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
		Categories:     result.Categories,
	})
}

// ListCategoryQuestions handles GET /categories/:id/questions
func (h *QuestionHandler) ListCategoryQuestions(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	page := pagination.ParsePage(c.QueryParam("page"))

	result, err := h.questions.QuestionsByCategory(c.Request().Context(), categoryID, page)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) || errors.Is(err, service.ErrPageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, QuestionPageResponse{
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// DeleteQuestion handles DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	if err := h.questions.DeleteQuestion(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, struct{}{})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, validationMessage(err))
	}

	question := &domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(req.Category),
		Difficulty: int(req.Difficulty),
	}

	if err := h.questions.CreateQuestion(c.Request().Context(), question); err != nil {
		if errors.Is(err, service.ErrInvalidQuestion) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		h.log.Error("failed to create question", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, struct{}{})
}

// SearchQuestions handles POST /questions/search
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	page := pagination.ParsePage(c.QueryParam("page"))

	result, err := h.questions.SearchQuestions(c.Request().Context(), req.SearchTerm, page)
	if err != nil {
		h.log.Error("failed to search questions", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, QuestionPageResponse{
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}
