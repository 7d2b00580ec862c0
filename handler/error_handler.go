package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/gstcheck/pkg/logger"
	"github.com/dmitrymomot/gstcheck/pkg/requestid"
)

// ErrorPageParams is passed to the error page component.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the toast component for DataStar requests.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

type errorInfo struct {
	status  int
	message string
	kind    string
	level   slog.Level
}

const genericErrorMessage = "An error occurred processing your request"

func classifyError(err error) errorInfo {
	info := errorInfo{status: http.StatusInternalServerError, message: genericErrorMessage}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.status = httpErr.Code
		info.message = httpErr.Text()
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		info.status = http.StatusUnprocessableEntity
		info.message = validationMessage(valErr)
	}

	info.kind = "error"
	info.level = slog.LevelError
	if info.status >= 400 && info.status < 500 {
		info.kind = "warning"
		info.level = slog.LevelWarn
	}
	return info
}

func validationMessage(e ValidationError) string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	var msgs []string
	for _, f := range fields {
		msgs = append(msgs, e[f]...)
	}
	if len(msgs) == 0 {
		return "Validation failed"
	}
	return strings.Join(msgs, "; ")
}

// NewErrorHandler returns an ErrorHandler that logs at warn for 4xx and error
// for 5xx, then renders ErrorPage for regular requests or ErrorToast for
// DataStar ones. Without components it falls back to http.Error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.level, "request error",
			logger.Error(err),
			logger.Status(info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", ctx.IsDataStar()),
		)

		var resp Response
		switch {
		case ctx.IsDataStar() && cfg.ErrorToast != nil:
			resp = Templ(
				cfg.ErrorToast(ErrorToastParams{Message: info.message, Type: info.kind, RequestID: reqID}),
				WithTarget(cfg.ToastTarget),
				WithPatchMode(cfg.ToastMode),
			)
		case !ctx.IsDataStar() && cfg.ErrorPage != nil:
			resp = TemplStatus(info.status, cfg.ErrorPage(ErrorPageParams{
				Error:      info.message,
				StatusCode: info.status,
				RequestID:  reqID,
				RetryURL:   r.URL.RequestURI(),
			}))
		default:
			http.Error(ctx.ResponseWriter(), info.message, info.status)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
