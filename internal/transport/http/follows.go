package http

import (
	"netshots-service/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) FollowUser(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	targetID := c.Params("targetUserId")

	alreadyFollowing, err := h.follows.Follow(c.Context(), uid, targetID)
	if err != nil {
		return respondError(c, err, "Target user not found")
	}
	if alreadyFollowing {
		return c.JSON(fiber.Map{"status": "already following"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

func (h *Handler) UnfollowUser(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	targetID := c.Params("targetUserId")

	if err := h.follows.Unfollow(c.Context(), uid, targetID); err != nil {
		return respondError(c, err, "Not following this user")
	}
	return c.JSON(fiber.Map{"status": "success"})
}

func (h *Handler) IsFollowing(c *fiber.Ctx) error {
	uid := middleware.UserID(c)
	following, err := h.follows.IsFollowing(c.Context(), uid, c.Params("targetUserId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"isFollowing": following})
}

func (h *Handler) GetFollowers(c *fiber.Ctx) error {
	ids, err := h.follows.Followers(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(ids)
}

func (h *Handler) GetFollowing(c *fiber.Ctx) error {
	ids, err := h.follows.Following(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(ids)
}
