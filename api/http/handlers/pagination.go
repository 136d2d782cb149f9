package handlers

import "github.com/gofiber/fiber/v2"

const (
	defaultPageSize = 10
	maxPageSize     = 200
)

type pageQuery struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// parsePage reads ?limit&offset. Malformed or out-of-range values fall back
// to the defaults instead of failing the request.
func parsePage(c *fiber.Ctx) pageQuery {
	var q pageQuery
	if err := c.QueryParser(&q); err != nil {
		q = pageQuery{}
	}
	if q.Limit <= 0 || q.Limit > maxPageSize {
		q.Limit = defaultPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}
