package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ApiError is the wire-format error envelope: {error, code, details}.
type ApiError struct {
	StatusCode int         `json:"-"`
	Msg        string      `json:"error"`
	Code       string      `json:"code"`
	Details    interface{} `json:"details,omitempty"`
}

const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
)

func (e ApiError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Msg)
}

func NewBadRequest(msg string) ApiError {
	return ApiError{StatusCode: http.StatusBadRequest, Msg: msg, Code: CodeBadRequest}
}

func NewValidationError(msg string, details interface{}) ApiError {
	return ApiError{StatusCode: http.StatusBadRequest, Msg: msg, Code: CodeValidationError, Details: details}
}

func NewNotFound(msg string) ApiError {
	return ApiError{StatusCode: http.StatusNotFound, Msg: msg, Code: CodeNotFound}
}

func NewConflict(msg string) ApiError {
	return ApiError{StatusCode: http.StatusConflict, Msg: msg, Code: CodeConflict}
}

func NewInternalServerError(msg string) ApiError {
	return ApiError{StatusCode: http.StatusInternalServerError, Msg: msg, Code: CodeInternalError}
}

func JsonDecodeBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// RenderResponse writes res as JSON. A nil res writes only the status code.
func RenderResponse(w http.ResponseWriter, statusCode int, res interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	if res != nil {
		var err error
		body, err = json.Marshal(res)
		if err != nil {
			ae := NewInternalServerError(err.Error())
			statusCode = ae.StatusCode
			body, err = json.Marshal(&ae)
			if err != nil {
				body = []byte(`{"error":"` + err.Error() + `","code":"INTERNAL_ERROR"}`)
			}
		}
	}
	w.WriteHeader(statusCode)
	if len(body) > 0 {
		w.Write(body)
	}
}

// WithLogging logs method, path, status and latency for every request.
func WithLogging(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(started)))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
