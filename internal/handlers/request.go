package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindRequest normalises path, query and body into single typed input and validates it.
// Body values win over query values, path values win over both.
func bindRequest(c echo.Context, dst any) error {
	binder := &echo.DefaultBinder{}

	if err := binder.BindQueryParams(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if c.Request().ContentLength != 0 {
		if err := binder.BindBody(c, dst); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	if err := binder.BindPathParams(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.Validate(dst)
}

// requestFields reads loosely typed customer attributes. JSON body is used when present,
// otherwise query string is taken. Numbers are kept as json.Number so integers survive.
func requestFields(c echo.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to read request body - %v", err))
	}

	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()

		fields := make(map[string]any)
		if err := dec.Decode(&fields); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("request body must be JSON object - %v", err))
		}
		return fields, nil
	}

	query := c.QueryParams()
	fields := make(map[string]any, len(query))
	for name := range query {
		fields[name] = query.Get(name)
	}
	return fields, nil
}
