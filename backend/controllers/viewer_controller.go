package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mylegs/backend/utils"
	"mylegs/backend/viewer"
)

type ViewerController struct{}

func NewViewerController() *ViewerController {
	return &ViewerController{}
}

// Preview godoc
// @Summary Resource preview metadata
// @Description Classification badge plus the embeddable preview URL for the two-stage viewer
// @Tags viewer
// @Produce json
// @Param title query string true "Resource title"
// @Param url query string false "Resource URL"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /viewer/preview [get]
func (vc *ViewerController) Preview(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return utils.BadRequest(c, "Resource title is required")
	}
	url := c.Query("url")

	response := fiber.Map{
		"category": viewer.Classify(title),
	}
	if url != "" {
		// The rewrite applies to the preview embed only; the full view
		// opens the original address.
		response["previewUrl"] = viewer.PreviewURL(url)
		response["url"] = url
	}

	return utils.Success(c, fiber.StatusOK, response)
}
