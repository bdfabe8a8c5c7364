package handler

import (
	"strconv"

	"payboard/internal/domain/entity"
	"payboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// pageParams reads the listing query parameters. The engine clamps the
// values again; defaults here only cover absent parameters.
func pageParams(c echo.Context) (find string, page, pageSize int) {
	find = c.QueryParam("find")
	page = intQueryParam(c, "page", defaultPage)
	pageSize = intQueryParam(c, "page_size", defaultPageSize)
	return find, page, pageSize
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

func idParam(c echo.Context) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}

func idParam32(c echo.Context, name string) (int32, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil || id < 1 {
		return 0, apierror.InvalidIDError
	}
	return int32(id), nil
}

// actor returns the authenticated user placed on the context by the auth
// middleware.
func actor(c echo.Context) *entity.User {
	user, _ := c.Get("user").(*entity.User)
	return user
}
