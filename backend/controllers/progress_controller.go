package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mylegs/backend/store"
	"mylegs/backend/utils"
)

type ProgressController struct {
	Progress *store.Progress
	Catalog  *store.Catalog
}

func NewProgressController(progress *store.Progress, catalog *store.Catalog) *ProgressController {
	return &ProgressController{Progress: progress, Catalog: catalog}
}

// GetProgress godoc
// @Summary Completed-topic state
// @Description The progress figure is the raw completed count, as the app has always shown it
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"completedTopics": pc.Progress.Completed(),
		"progress":        pc.Progress.Percentage(),
		"totalTopics":     pc.Catalog.TopicCount(),
	})
}

// ToggleCompletion godoc
// @Summary Toggle a topic's completion flag
// @Tags progress
// @Accept json
// @Produce json
// @Param input body map[string]string true "Topic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/toggle [post]
func (pc *ProgressController) ToggleCompletion(c *fiber.Ctx) error {
	var input struct {
		TopicID string `json:"topicId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.TopicID == "" {
		return utils.BadRequest(c, "Topic id is required")
	}

	completed, err := pc.Progress.Toggle(c.Context(), input.TopicID)
	if err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"completed":       completed,
		"completedTopics": pc.Progress.Completed(),
		"progress":        pc.Progress.Percentage(),
	})
}
