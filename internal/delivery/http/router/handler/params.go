package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the ":id" path parameter as an unsigned integer.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

// optionalUintQuery parses an optional unsigned integer query parameter.
// Absence yields a nil pointer; a malformed value yields an error.
func optionalUintQuery(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	value := uint(parsed)

	return &value, nil
}
