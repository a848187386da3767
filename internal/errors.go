package alphaview_errors

import (
	"errors"
	"fmt"
)

var ErrMissingTicker = errors.New("Required ticker to set company as favorite")

type ErrEmptyResponse struct {
	Function string
	Symbol   string
}

func (e ErrEmptyResponse) Error() string {
	return fmt.Sprintf("alpha vantage returned an empty %s response for %s", e.Function, e.Symbol)
}

// ErrUpstream is returned when alpha vantage answers with a note or error
// message instead of data, e.g. an unknown symbol or a rate limit.
type ErrUpstream struct {
	Function string
	Symbol   string
	Message  string
}

func (e ErrUpstream) Error() string {
	return fmt.Sprintf("alpha vantage %s request for %s failed: %s", e.Function, e.Symbol, e.Message)
}

type ErrPersistence struct {
	Op  string
	Err error
}

func (e ErrPersistence) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Op, e.Err.Error())
}

func (e ErrPersistence) Unwrap() error {
	return e.Err
}
