package handlers

import (
	"errors"
	"strconv"

	"githubActivityFeed/internal/events"
	"githubActivityFeed/internal/github"

	"github.com/gofiber/fiber/v2"
)

type HTTP struct {
	service events.Service
}

func NewHTTP(s events.Service) *HTTP {
	return &HTTP{
		service: s,
	}
}

// GetUserEvents renders the feed of :username.
func (h *HTTP) GetUserEvents(c *fiber.Ctx) error {
	username := c.Params("username")

	o := h.service.Resolve(c.UserContext(), username)
	if o.Err == nil {
		return c.JSON(o.Report)
	}

	var fe *github.FetchError
	if errors.As(o.Err, &fe) && fe.Kind == github.UnexpectedStatus {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  o.Lines[0],
			"status": fe.StatusCode,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": o.Lines[0],
	})
}

func (h *HTTP) GetLookups(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
	}
	lookups, err := h.service.RecentLookups(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup history unavailable"})
	}
	return c.JSON(lookups)
}
