package httputil

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	// Set on 429 answers so clients can show the wait.
	RetryAfterMinutes int `json:"retry_after_minutes,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeError(w, resp)
}

// WriteTooManyRequests answers with 429 and a Retry-After header in seconds.
func WriteTooManyRequests(w http.ResponseWriter, message string, retryAfterMinutes int) {
	if retryAfterMinutes > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterMinutes*60))
	}
	writeError(w, ErrorResponse{
		Code:              http.StatusTooManyRequests,
		Message:           message,
		RetryAfterMinutes: retryAfterMinutes,
	})
}

func writeError(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSON reads a JSON request body into v. An empty body is reported as io.EOF.
func DecodeJSON(body io.ReadCloser, v any) error {
	if body == nil {
		return io.EOF
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return errors.New("reading body error: " + err.Error())
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return io.EOF
	}
	if err = sonic.ConfigDefault.Unmarshal(raw, v); err != nil {
		return errors.New("decoding body error: " + err.Error())
	}
	return nil
}
