package net

import (
	"net/http"

	perr "contentgate/internal/platform/errors"
)

// Wire is the error envelope used by transports
// success bodies are written bare, so only failures travel in a Wire
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error,omitempty"`
	Hint       string         `json:"hint,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error builds an error envelope
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		err = perr.Internalf("nil error")
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Hint:       w.Hint,
		RequestID:  reqID,
	}
}
