package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrKanaNotFound       = errors.New("kana not found")
	ErrNoCorrespondence   = errors.New("no corresponding kana")
	ErrUnknownRow         = errors.New("unknown kana row")
	ErrNoQuestion         = errors.New("no question is pending")
	ErrQuizActive         = errors.New("quiz already in progress")
	ErrQuizNotActive      = errors.New("no quiz in progress")
)
