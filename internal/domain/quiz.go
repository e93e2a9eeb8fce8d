package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that also decodes from a numeric JSON string.
// Web clients often send form values such as "3" verbatim.
type FlexInt int

// UnmarshalJSON accepts 3, "3" and null
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = FlexInt(v)
	return nil
}

// QuizCategory is the category descriptor sent by the quiz player.
// ID is nil when the client omitted it or sent null.
type QuizCategory struct {
	ID   *FlexInt `json:"id"`
	Type string   `json:"type"`
}

// QuizRequest asks for the next quiz question
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// QuizService defines quiz play
type QuizService interface {
	NextQuestion(ctx context.Context, req QuizRequest) (*Question, error)
}
