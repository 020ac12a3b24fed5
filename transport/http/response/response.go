package response

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/logger"
)

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithHTML buffers render so a failing template never leaves a half written fragment behind.
func WithHTML(writer http.ResponseWriter, code int, render func(w io.Writer) error) {
	var buf bytes.Buffer

	if err := render(&buf); err != nil {
		logger.ErrorWithStack(err)
		WithText(writer, failure.InternalError(err))

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := buf.WriteTo(writer); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithText sends err as a plain text body with the status carried by its failure code.
// Server side failures only expose their status text.
func WithText(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	body := err.Error()
	if code >= http.StatusInternalServerError {
		body = http.StatusText(code)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)
	writer.WriteHeader(code)

	if _, werr := io.WriteString(writer, body); werr != nil {
		logger.ErrorWithStack(werr)
	}
}

// WithEmpty sends a bodyless 200 so htmx swaps the target out of the page.
func WithEmpty(writer http.ResponseWriter) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(http.StatusOK)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
