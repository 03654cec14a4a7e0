package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/readmode"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	readmode.EINVALID:     http.StatusBadRequest,
	readmode.ENOTFOUND:    http.StatusNotFound,
	readmode.ETIMEOUT:     http.StatusRequestTimeout,
	readmode.EMALFORMED:   http.StatusUnprocessableEntity,
	readmode.EUNAVAILABLE: http.StatusBadGateway,
	readmode.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error response. Internal errors are logged and
// reported to the client without their details.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, message := readmode.ErrorCode(err), readmode.ErrorMessage(err)
	if code == readmode.EINTERNAL {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, ErrorStatusCode(code), &errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
