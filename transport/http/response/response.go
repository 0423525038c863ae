package response

import (
	"encoding/json"
	"net/http"

	"roomlist/config"
	"roomlist/shared/constant"
	"roomlist/shared/failure"
	"roomlist/shared/logger"
)

const (
	statusSuccess = "success"
)

type Base struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

type Error struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WithData sends a single-item success envelope.
func WithData(writer http.ResponseWriter, code int, data any) {
	response(writer, code, Base{Status: statusSuccess, Data: data})
}

// WithList sends a collection envelope carrying the number of returned items.
func WithList(writer http.ResponseWriter, code int, data any, count int) {
	response(writer, code, Base{Status: statusSuccess, Data: data, Count: &count})
}

// WithMessage sends a success envelope with a text message only.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Base{Status: statusSuccess, Message: message})
}

// WithMessageData sends a write envelope: message plus the affected record.
func WithMessageData(writer http.ResponseWriter, code int, message string, data any) {
	response(writer, code, Base{Status: statusSuccess, Message: message, Data: data})
}

// WithError translates an error into the error envelope. Internal failures
// expose their detail outside production only.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code == http.StatusInternalServerError {
		body := Error{Error: constant.ResponseErrorInternal}
		if config.Get().Server.Env != constant.ServerEnvProduction {
			body.Details = err.Error()
		}

		response(writer, code, body)

		return
	}

	response(writer, code, Error{Error: err.Error()})
}

// WithRouteNotFound sends the fallback response for unmatched routes.
func WithRouteNotFound(writer http.ResponseWriter) {
	response(writer, http.StatusNotFound, Error{Error: constant.ResponseErrorRouteNotFound})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
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
