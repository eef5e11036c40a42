package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mylegs/backend/models"
	"mylegs/backend/session"
	"mylegs/backend/store"
	"mylegs/backend/utils"
)

type BinderController struct {
	Binder   *store.Binder
	Sessions *session.Manager
}

func NewBinderController(binder *store.Binder, sessions *session.Manager) *BinderController {
	return &BinderController{Binder: binder, Sessions: sessions}
}

// GetBinder godoc
// @Summary The personal library
// @Description Returns the flat bookmark list and the user's folders
// @Tags binder
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /binder [get]
func (bc *BinderController) GetBinder(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"bookmarks": bc.Binder.Bookmarks(),
		"folders":   bc.Binder.Folders(),
	})
}

// ToggleBookmark godoc
// @Summary Add or remove a bookmark
// @Description Removal is unconditional; adding past the free limit returns the upgrade prompt
// @Tags binder
// @Accept json
// @Produce json
// @Param item body models.BookmarkItem true "Bookmark (id, title, type, optional subtitle/url)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /binder/bookmarks/toggle [post]
func (bc *BinderController) ToggleBookmark(c *fiber.Ctx) error {
	var item models.BookmarkItem
	if err := c.BodyParser(&item); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if item.ID == "" || item.Title == "" {
		return utils.BadRequest(c, "Bookmark id and title are required")
	}

	added, err := bc.Binder.Toggle(c.Context(), item, bc.Sessions.CurrentTier())
	if errors.Is(err, store.ErrUpgradeRequired) {
		return utils.UpgradeRequired(c, "Free plan is limited to 3 binder items")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not save binder")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"bookmarked": added,
		"bookmarks":  bc.Binder.Bookmarks(),
	})
}

// CreateFolder godoc
// @Summary Create a binder folder
// @Description Folders are a paid feature; the free tier gets the upgrade prompt
// @Tags binder
// @Accept json
// @Produce json
// @Param folder body map[string]string true "Folder name"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /binder/folders [post]
func (bc *BinderController) CreateFolder(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "Folder name is required")
	}

	folder, err := bc.Binder.CreateFolder(c.Context(), input.Name, bc.Sessions.CurrentTier())
	if errors.Is(err, store.ErrUpgradeRequired) {
		return utils.UpgradeRequired(c, "Folders are available on paid plans")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not save binder")
	}

	return utils.Created(c, fiber.Map{"folder": folder})
}

// DeleteFolder godoc
// @Summary Delete a binder folder
// @Description Removes the folder only; bookmarks it referenced stay in the flat list
// @Tags binder
// @Produce json
// @Param id path string true "Folder ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /binder/folders/{id} [delete]
func (bc *BinderController) DeleteFolder(c *fiber.Ctx) error {
	err := bc.Binder.DeleteFolder(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Folder not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not save binder")
	}
	return utils.NoContent(c)
}
