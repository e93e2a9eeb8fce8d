package service

import "errors"

// Common service errors
var (
	ErrNoCategories            = errors.New("no categories found")
	ErrPageNotFound            = errors.New("page not found")
	ErrNoQuestionsLeft         = errors.New("no questions left to ask")
	ErrUnknownPreviousQuestion = errors.New("previous question is not in the candidate pool")
	ErrInvalidQuestion         = errors.New("invalid question")
	ErrInvalidQuizCategory     = errors.New("invalid quiz category")
)
