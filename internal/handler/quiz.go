package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuizHandler handles quiz play requests
type QuizHandler struct {
	quiz      domain.QuizService
	questions domain.QuestionService
	log       *slog.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz domain.QuizService, questions domain.QuestionService, log *slog.Logger) *QuizHandler {
	return &QuizHandler{
		quiz:      quiz,
		questions: questions,
		log:       log,
	}
}

// Register registers the quiz routes behind the given middleware
func (h *QuizHandler) Register(e *echo.Echo, m ...echo.MiddlewareFunc) {
	g := e.Group("/quizzes", m...)
	g.POST("", h.NextQuestion)
	g.POST("/answer", h.CheckAnswer)
}

// QuizResponse carries the next quiz question
type QuizResponse struct {
	Question *domain.Question `json:"question"`
}

// CheckAnswerRequest represents a submitted quiz answer
type CheckAnswerRequest struct {
	QuestionID domain.FlexInt `json:"question_id" validate:"required"`
	Answer     string         `json:"answer" validate:"required"`
}

// NextQuestion handles POST /quizzes
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req domain.QuizRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, validationMessage(err))
	}

	question, err := h.quiz.NextQuestion(c.Request().Context(), req)
	if err != nil {
		h.log.Debug("no quiz question", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, QuizResponse{Question: question})
}

// CheckAnswer handles POST /quizzes/answer
func (h *QuizHandler) CheckAnswer(c echo.Context) error {
	var req CheckAnswerRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, validationMessage(err))
	}

	result, err := h.questions.CheckAnswer(c.Request().Context(), int(req.QuestionID), req.Answer)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}
