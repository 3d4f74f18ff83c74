package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// envelope is the JSON shape every endpoint answers with.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	Limit   *int        `json:"limit,omitempty"`
}

func respondData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondList(c echo.Context, data interface{}, total int64, page, limit int) error {
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Total:   &total,
		Page:    &page,
		Limit:   &limit,
	})
}

func respondNoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// pageParams reads page and limit query parameters with sane defaults.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}
	return page, limit
}
