package net

import (
	"encoding/json"
	"net/http"

	perr "layoffs/internal/platform/errors"
)

// Envelope wraps every api body. Failures fill Code and Error, successes Data.
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Reply is the success envelope for status
func Reply(status int, data any, reqID string) Envelope {
	return Envelope{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// Fail classifies err and returns the status it maps to with its envelope
func Fail(err error, reqID string) (int, Envelope) {
	status := perr.HTTPStatus(err)
	env := Reply(status, nil, reqID)
	wire := perr.WireFrom(err)
	env.Code, env.Error = wire.Code, wire.Message
	return status, env
}

// WriteJSON encodes v with status. Encoding errors are dropped since the
// header is already out.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
