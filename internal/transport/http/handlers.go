package http

import (
	"encoding/json"
	"errors"

	"netshots-service/internal/service"
	"netshots-service/pkg/models"
	"netshots-service/utils"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	profiles *service.ProfileService
	matches  *service.MatchService
	follows  *service.FollowService
	feed     *service.FeedService
	uploads  *utils.PictureR2Client // nil when R2 is not configured
}

func NewHandler(
	profiles *service.ProfileService,
	matches *service.MatchService,
	follows *service.FollowService,
	feed *service.FeedService,
	uploads *utils.PictureR2Client,
) *Handler {
	return &Handler{
		profiles: profiles,
		matches:  matches,
		follows:  follows,
		feed:     feed,
		uploads:  uploads,
	}
}

// parsePayload reads the request body as a JSON object. An empty or
// undecodable body is an empty payload; a decodable non-object is a 400.
func parsePayload(c *fiber.Ctx) (map[string]interface{}, error) {
	body := c.Body()
	if len(body) == 0 {
		return map[string]interface{}{}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return map[string]interface{}{}, nil
	}
	payload, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload must be a JSON object")
	}
	return payload, nil
}

// respondError maps service errors to status codes. notFoundMsg keeps the
// per-resource 404 wording; validation errors carry their own reason.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Reason})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	case errors.Is(err, service.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return err // falls through to the app error handler → generic 500
	}
}
