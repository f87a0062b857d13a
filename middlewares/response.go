package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type ResponseWriter struct {
	Writer http.ResponseWriter
	Logger *log.Entry
}

func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		Writer: w,
	}
}

type generalResponse struct {
	Errors  []*errorResponse `json:"errors"`
	Success bool             `json:"success"`
	Data    interface{}      `json:"data"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Scope   string `json:"scope,omitempty"`
}

type ErrOption func(*errorResponse)

func WithErrorScope(scope string) ErrOption {
	return func(err *errorResponse) {
		err.Scope = scope
	}
}

func (r *ResponseWriter) logger() *log.Entry {
	if r.Logger != nil {
		return r.Logger
	}
	return log.NewEntry(log.StandardLogger())
}

func (r *ResponseWriter) writeJSONResponse(code int, errs []*errorResponse, data interface{}) {
	response := &generalResponse{Errors: errs, Success: errs == nil, Data: data}
	r.writePlainJSONResponse(code, response)
}

func (r *ResponseWriter) writePlainJSONResponse(statusCode int, data interface{}) {
	b, err := json.Marshal(data)
	if err != nil {
		r.Writer.WriteHeader(http.StatusInternalServerError)
		r.Writer.Write([]byte(fmt.Sprintf("unexpected error: %v", err)))
		return
	}

	r.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	r.Writer.WriteHeader(statusCode)

	if _, err := r.Writer.Write(b); err != nil {
		r.logger().WithField("status_code", statusCode).Warn("could not write response")
	}
}

// WriteJSON logs the outcome and writes data as the body. Error responses
// without data get {"error": message}.
func (r *ResponseWriter) WriteJSON(statusCode int, data interface{}, err error, message string) {
	logger := r.logger()
	fields := make(log.Fields)
	fields["status_code"] = statusCode
	if statusCode >= 200 && statusCode <= 299 {
		logger.WithFields(fields).Info("success")
	}
	if statusCode >= 300 {
		if data == nil {
			data = map[string]interface{}{
				"error": message,
			}
		}
		if err == nil {
			err = errors.New(message)
		}
		fields["errors"] = data
		logger.WithFields(fields).Error(err)
	}
	if statusCode == http.StatusNoContent {
		r.Writer.WriteHeader(statusCode)
		return
	}
	r.writePlainJSONResponse(statusCode, data)
}

// Bytes writes a raw body such as an image or a calendar file.
func (r *ResponseWriter) Bytes(code int, contentType string, body []byte) {
	r.Writer.Header().Set("Content-Type", contentType)
	r.Writer.WriteHeader(code)
	if _, err := r.Writer.Write(body); err != nil {
		r.logger().WithField("status_code", code).Warn("could not write response")
	}
}

func (r *ResponseWriter) Redirect(req *http.Request, url string) {
	r.logger().WithField("location", url).Info("redirect")
	http.Redirect(r.Writer, req, url, http.StatusFound)
}

func (r *ResponseWriter) String(code int, msg string) {
	r.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	r.Writer.WriteHeader(code)
	if _, err := r.Writer.Write([]byte(msg)); err != nil {
		r.logger().WithField("status_code", code).Warn("could not write response")
	}
}

func (r *ResponseWriter) Error(code int, msg string, opts ...ErrOption) {
	err := &errorResponse{Code: code, Message: msg}
	for _, With := range opts {
		With(err)
	}
	r.writeJSONResponse(code, []*errorResponse{err}, nil)
}
