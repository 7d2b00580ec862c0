package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/gstcheck/handler"
	"github.com/dmitrymomot/gstcheck/internal/lookup"
	"github.com/dmitrymomot/gstcheck/internal/web/views"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/logger"
	"github.com/dmitrymomot/gstcheck/pkg/validator"
)

const (
	searchTarget = "#gst-search"
	resultTarget = "#result"
)

type searchRequest struct {
	GSTIN string `query:"gstin" form:"gstin"`
}

type resultRequest struct {
	Slug string `path:"slug"`
}

type apiRequest struct {
	GSTIN string `path:"gstin"`
}

type handlers struct {
	svc Looker
	log *slog.Logger
}

func (h *handlers) searchPage(handler.Context, struct{}) handler.Response {
	return handler.Templ(views.SearchPage(views.SearchData{Action: gstin.PathPrefix}))
}

// search validates the input and sends the user to the identifier's page,
// which canonicalises the URL once the name is known.
func (h *handlers) search(ctx handler.Context, req searchRequest) handler.Response {
	id, err := lookup.Validate(req.GSTIN)
	if err != nil {
		data := views.SearchData{Action: gstin.PathPrefix, Input: req.GSTIN, Error: firstMessage(err)}
		return handler.TemplPartial(http.StatusUnprocessableEntity,
			views.SearchForm(data),
			views.SearchPage(data),
			handler.WithTarget(searchTarget),
		)
	}
	return handler.Redirect(gstin.PathPrefix + id.Lower() + "/")
}

func (h *handlers) result(ctx handler.Context, req resultRequest) handler.Response {
	id, ok := gstin.FromSegment(req.Slug)
	if !ok {
		return handler.Error(handler.ErrNotFound.WithMessage("No GSTIN found in this address"))
	}

	r := ctx.Request()
	out := h.svc.Lookup(ctx, lookup.Request{Input: id.String(), CurrentPath: r.URL.Path})

	data := views.ResultData{
		GSTIN:    out.GSTIN,
		Message:  out.Message,
		RetryURL: r.URL.RequestURI(),
		Search:   views.SearchData{Action: gstin.PathPrefix, Input: id.String()},
	}

	switch out.State {
	case lookup.StateSuccess:
		if out.RedirectTo != "" {
			return handler.RedirectWithCode(out.RedirectTo, http.StatusMovedPermanently)
		}
		data.Summary = out.Result.Data
		data.Source = out.Result.Source
		data.Demo = out.Result.Demo
		section := views.ResultSection(data)
		return handler.TemplPartial(http.StatusOK, section,
			views.ResultPage(out.Result.Data.DisplayName()+" GST returns", data, section),
			handler.WithTarget(resultTarget),
		)
	case lookup.StateNotFound:
		section := views.NotFoundSection(data)
		return handler.TemplPartial(http.StatusNotFound, section,
			views.ResultPage("GSTIN not found", data, section),
			handler.WithTarget(resultTarget),
		)
	case lookup.StateError:
		section := views.ErrorSection(data)
		return handler.TemplPartial(http.StatusBadGateway, section,
			views.ResultPage("GST return lookup failed", data, section),
			handler.WithTarget(resultTarget),
		)
	default:
		return handler.Error(toValidationError(out.Err))
	}
}

func (h *handlers) lookupJSON(ctx handler.Context, req apiRequest) handler.Response {
	raw := req.GSTIN
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}

	out := h.svc.Lookup(ctx, lookup.Request{Input: raw})

	switch out.State {
	case lookup.StateSuccess:
		return handler.JSON(out.Result.Data, handler.WithJSONMeta(map[string]any{
			"gstin":         out.GSTIN.String(),
			"region":        out.GSTIN.Region(),
			"canonicalPath": out.CanonicalPath,
			"source":        out.Result.Source,
			"demo":          out.Result.Demo,
		}))
	case lookup.StateNotFound:
		return handler.JSON(handler.ErrNotFound.WithMessage(out.Message))
	case lookup.StateError:
		h.log.WarnContext(ctx, "lookup failed", logger.GSTIN(out.GSTIN.String()), logger.Error(out.Err))
		return handler.JSON(handler.ErrBadGateway.WithMessage(out.Message))
	default:
		return handler.JSON(toValidationError(out.Err))
	}
}

// toValidationError converts validator errors to the HTTP layer's form.
func toValidationError(err error) error {
	ve := validator.ExtractValidationErrors(err)
	if len(ve) == 0 {
		return errors.Join(handler.ErrBadRequest, err)
	}
	out := handler.NewValidationError()
	for _, e := range ve {
		out.Add(e.Field, e.Message)
	}
	return out
}

func firstMessage(err error) string {
	if ve := validator.ExtractValidationErrors(err); len(ve) > 0 {
		return ve[0].Message
	}
	return "GSTIN is invalid"
}
