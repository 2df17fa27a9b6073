// Package httputil writes JSON bodies and the error envelope every endpoint
// shares.
package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// RequestIDHeader is echoed on every response and copied into error bodies.
const RequestIDHeader = "X-Request-ID"

type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:      statusCode,
		Message:   message,
		RequestID: w.Header().Get(RequestIDHeader),
	}
	if details != nil {
		resp.Details = details.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSON reads the request body into dst and closes it. An empty body
// leaves dst untouched.
func DecodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
