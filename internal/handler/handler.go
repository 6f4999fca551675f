package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/auth"
	"github.com/thegoanwedding/marketplace/internal/service"
	"github.com/thegoanwedding/marketplace/internal/validation"
)

// Guards are the per-route middlewares the server injects. Nil entries are
// skipped, which keeps handlers usable without the full stack in tests.
type Guards struct {
	Admin    func(auth.Scope) echo.MiddlewareFunc
	Identify echo.MiddlewareFunc
	Cache    echo.MiddlewareFunc
	Limit    echo.MiddlewareFunc
}

func (g Guards) admin(scope auth.Scope) echo.MiddlewareFunc {
	if g.Admin == nil {
		return nil
	}
	return g.Admin(scope)
}

func chain(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			out = append(out, mw)
		}
	}
	return out
}

// httpError maps service errors to HTTP status codes. Anything unknown is a
// 500 whose cause is kept internal for logging.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrAlreadyResponded):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrVendorNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrSubmissionNotFound),
		errors.Is(err, service.ErrWeddingNotFound),
		errors.Is(err, service.ErrInvitationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}

func parseID(c echo.Context, name, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+label+" id")
	}
	return uint(id), nil
}

func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validation.Describe(err))
	}
	return nil
}

// bindList decodes a JSON array body. Bind cannot be used because it also
// tries to map path and query parameters onto the target.
func bindList[T any](c echo.Context) ([]T, error) {
	var items []T
	if err := (&echo.DefaultBinder{}).BindBody(c, &items); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON array")
	}
	return items, nil
}

// origin is the base URL used in links handed to guests.
func origin(c echo.Context, publicURL string) string {
	if publicURL != "" {
		return strings.TrimRight(publicURL, "/")
	}
	return c.Scheme() + "://" + c.Request().Host
}
