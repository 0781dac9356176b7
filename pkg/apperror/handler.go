package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// PageRenderer writes a human readable error page for err.
type PageRenderer func(w http.ResponseWriter, r *http.Request, err *Error)

// ErrorHandler adapts failing handlers to net/http. It is the single place
// where errors leave the website: 5xx errors are logged, JSON clients get
// the {"error": {...}} envelope and browsers get the rendered error page.
type ErrorHandler struct {
	log    *slog.Logger
	render PageRenderer
}

// NewErrorHandler creates an ErrorHandler. A nil renderer falls back to
// plain text responses.
func NewErrorHandler(log *slog.Logger, render PageRenderer) *ErrorHandler {
	return &ErrorHandler{log: log, render: render}
}

// Wrap converts h into an http.HandlerFunc.
func (eh *ErrorHandler) Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			eh.Handle(w, r, err)
		}
	}
}

// Handle writes err to w.
func (eh *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	appErr := From(err)

	if appErr.HTTPStatus >= 500 {
		eh.log.Error("request error",
			slog.Int("status", appErr.HTTPStatus),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(appErr.HTTPStatus)
		return
	}

	if wantsJSON(r) {
		status, body := ToHTTPError(appErr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
		return
	}

	if eh.render == nil {
		http.Error(w, appErr.Message, appErr.HTTPStatus)
		return
	}
	eh.render(w, r, appErr)
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
