package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mylegs/backend/middleware"
	"mylegs/backend/models"
	"mylegs/backend/store"
	"mylegs/backend/utils"
)

type AdminController struct {
	Directory  *store.Directory
	Tiers      *store.TierRegistry
	Catalog    *store.Catalog
	Activities *store.ActivityLog
}

func NewAdminController(directory *store.Directory, tiers *store.TierRegistry, catalog *store.Catalog, activities *store.ActivityLog) *AdminController {
	return &AdminController{Directory: directory, Tiers: tiers, Catalog: catalog, Activities: activities}
}

func (ac *AdminController) record(c *fiber.Ctx, kind, detail string) {
	actor := "unknown"
	if user, ok := middleware.CurrentUser(c); ok {
		actor = user.Email
	}
	ac.Activities.Record(kind, actor, detail)
}

// --- Dashboard ---

// GetDashboard godoc
// @Summary Back-office dashboard figures
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/dashboard [get]
func (ac *AdminController) GetDashboard(c *fiber.Ctx) error {
	users := ac.Directory.Users()
	byTier := make(map[string]int)
	for _, u := range users {
		byTier[u.TierID]++
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"totalUsers":  len(users),
		"usersByTier": byTier,
		"totalTopics": ac.Catalog.TopicCount(),
		"totalTiers":  len(ac.Tiers.Tiers()),
		"totalLinks":  len(ac.Catalog.Links()),
	})
}

// GetActivities godoc
// @Summary Recent logins and admin mutations
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/activities [get]
func (ac *AdminController) GetActivities(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"activities": ac.Activities.Entries()})
}

// --- Users ---

// ListUsers godoc
// @Summary List directory entries
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"users": ac.Directory.Users()})
}

// CreateUser godoc
// @Summary Add a directory entry
// @Tags admin
// @Accept json
// @Produce json
// @Param user body map[string]string true "Name, email, password, tierId, role"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users [post]
func (ac *AdminController) CreateUser(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		TierID   string `json:"tierId"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Name, email and password are required")
	}
	if input.TierID == "" {
		if def := ac.Tiers.Default(); def != nil {
			input.TierID = def.ID
		}
	}
	if input.Role == "" {
		input.Role = models.RoleUser
	}

	user, err := ac.Directory.Add(input.Name, input.Email, input.Password, input.TierID, input.Role)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return utils.BadRequest(c, "Email already registered")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	ac.record(c, models.ActivityCreate, fmt.Sprintf("Created user %s", user.Email))
	return utils.Created(c, fiber.Map{"user": user})
}

// UpdateUser godoc
// @Summary Patch a directory entry
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{id} [put]
func (ac *AdminController) UpdateUser(c *fiber.Ctx) error {
	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Directory.Update(c.Params("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	if errors.Is(err, store.ErrDuplicateEmail) {
		return utils.BadRequest(c, "Email already registered")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	ac.record(c, models.ActivityUpdate, fmt.Sprintf("Updated user %s", user.Email))
	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": user})
}

// DeleteUser godoc
// @Summary Remove a directory entry
// @Description Immediate and unconditional; an established session for the user stays valid
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{id} [delete]
func (ac *AdminController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ac.Directory.Delete(id); errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	ac.record(c, models.ActivityDelete, fmt.Sprintf("Deleted user %s", id))
	return utils.NoContent(c)
}

// --- Topics ---

// CreateTopic godoc
// @Summary Add a curriculum topic
// @Description The new topic is appended; its position decides its entitlement index
// @Tags admin
// @Accept json
// @Produce json
// @Param topic body models.Topic true "Topic"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/topics [post]
func (ac *AdminController) CreateTopic(c *fiber.Ctx) error {
	var topic models.Topic
	if err := c.BodyParser(&topic); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if topic.Title == "" {
		return utils.BadRequest(c, "Topic title is required")
	}
	if topic.ID == "" {
		topic.ID = uuid.NewString()
	}
	if topic.Number == 0 {
		topic.Number = ac.Catalog.TopicCount() + 1
	}

	created := ac.Catalog.AddTopic(topic)
	ac.record(c, models.ActivityCreate, fmt.Sprintf("Created topic %q", created.Title))
	return utils.Created(c, fiber.Map{"topic": created})
}

// UpdateTopic godoc
// @Summary Patch a curriculum topic
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param patch body models.TopicPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/topics/{id} [put]
func (ac *AdminController) UpdateTopic(c *fiber.Ctx) error {
	var patch models.TopicPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	topic, err := ac.Catalog.UpdateTopic(c.Params("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Topic not found")
	}

	ac.record(c, models.ActivityUpdate, fmt.Sprintf("Updated topic %q", topic.Title))
	return utils.Success(c, fiber.StatusOK, fiber.Map{"topic": topic})
}

// DeleteTopic godoc
// @Summary Remove a curriculum topic
// @Tags admin
// @Produce json
// @Param id path string true "Topic ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/topics/{id} [delete]
func (ac *AdminController) DeleteTopic(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ac.Catalog.DeleteTopic(id); errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Topic not found")
	}
	ac.record(c, models.ActivityDelete, fmt.Sprintf("Deleted topic %s", id))
	return utils.NoContent(c)
}

// --- External links ---

// CreateLink godoc
// @Summary Add an external link
// @Tags admin
// @Accept json
// @Produce json
// @Param link body models.ExternalLink true "Link"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/links [post]
func (ac *AdminController) CreateLink(c *fiber.Ctx) error {
	var link models.ExternalLink
	if err := c.BodyParser(&link); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if link.Title == "" || link.URL == "" {
		return utils.BadRequest(c, "Link title and url are required")
	}
	if link.ID == "" {
		link.ID = uuid.NewString()
	}

	created := ac.Catalog.AddLink(link)
	ac.record(c, models.ActivityCreate, fmt.Sprintf("Created link %q", created.Title))
	return utils.Created(c, fiber.Map{"link": created})
}

// UpdateLink godoc
// @Summary Patch an external link
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param patch body models.LinkPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/links/{id} [put]
func (ac *AdminController) UpdateLink(c *fiber.Ctx) error {
	var patch models.LinkPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	link, err := ac.Catalog.UpdateLink(c.Params("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Link not found")
	}

	ac.record(c, models.ActivityUpdate, fmt.Sprintf("Updated link %q", link.Title))
	return utils.Success(c, fiber.StatusOK, fiber.Map{"link": link})
}

// DeleteLink godoc
// @Summary Remove an external link
// @Tags admin
// @Produce json
// @Param id path string true "Link ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/links/{id} [delete]
func (ac *AdminController) DeleteLink(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ac.Catalog.DeleteLink(id); errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Link not found")
	}
	ac.record(c, models.ActivityDelete, fmt.Sprintf("Deleted link %s", id))
	return utils.NoContent(c)
}

// --- Subscription tiers ---

// ListTiers godoc
// @Summary List subscription tiers
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/tiers [get]
func (ac *AdminController) ListTiers(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"tiers": ac.Tiers.Tiers()})
}

// CreateTier godoc
// @Summary Add a subscription tier
// @Tags admin
// @Accept json
// @Produce json
// @Param tier body models.SubscriptionTier true "Tier"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/tiers [post]
func (ac *AdminController) CreateTier(c *fiber.Ctx) error {
	var tier models.SubscriptionTier
	if err := c.BodyParser(&tier); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if tier.Name == "" {
		return utils.BadRequest(c, "Tier name is required")
	}
	if tier.Price < 0 {
		return utils.BadRequest(c, "Tier price cannot be negative")
	}
	if tier.ID == "" {
		tier.ID = "tier-" + uuid.NewString()
	}
	if tier.Features == nil {
		tier.Features = []string{}
	}

	created := ac.Tiers.Add(tier)
	ac.record(c, models.ActivityCreate, fmt.Sprintf("Created tier %q", created.Name))
	return utils.Created(c, fiber.Map{"tier": created})
}

// UpdateTier godoc
// @Summary Patch a subscription tier
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Tier ID"
// @Param patch body models.TierPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/tiers/{id} [put]
func (ac *AdminController) UpdateTier(c *fiber.Ctx) error {
	var patch models.TierPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	tier, err := ac.Tiers.Update(c.Params("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Tier not found")
	}

	ac.record(c, models.ActivityUpdate, fmt.Sprintf("Updated tier %q", tier.Name))
	return utils.Success(c, fiber.StatusOK, fiber.Map{"tier": tier})
}

// DeleteTier godoc
// @Summary Remove a subscription tier
// @Description The default tier cannot be removed; it is the dangling-id fallback
// @Tags admin
// @Produce json
// @Param id path string true "Tier ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/tiers/{id} [delete]
func (ac *AdminController) DeleteTier(c *fiber.Ctx) error {
	id := c.Params("id")
	err := ac.Tiers.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Tier not found")
	}
	if errors.Is(err, store.ErrDefaultTier) {
		return utils.BadRequest(c, "The default tier cannot be deleted")
	}
	ac.record(c, models.ActivityDelete, fmt.Sprintf("Deleted tier %s", id))
	return utils.NoContent(c)
}

// --- Settings and chatbot configuration ---

// GetSettings godoc
// @Summary App settings
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/settings [get]
func (ac *AdminController) GetSettings(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"settings": ac.Catalog.Settings()})
}

// UpdateSettings godoc
// @Summary Patch app settings
// @Tags admin
// @Accept json
// @Produce json
// @Param patch body models.SettingsPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/settings [put]
func (ac *AdminController) UpdateSettings(c *fiber.Ctx) error {
	var patch models.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	settings := ac.Catalog.UpdateSettings(patch)
	ac.record(c, models.ActivityUpdate, "Updated app settings")
	return utils.Success(c, fiber.StatusOK, fiber.Map{"settings": settings})
}

// GetChatbotConfig godoc
// @Summary AI tutor configuration
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/chatbot [get]
func (ac *AdminController) GetChatbotConfig(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"chatbot": ac.Catalog.ChatbotConfig()})
}

// UpdateChatbotConfig godoc
// @Summary Patch the AI tutor configuration
// @Tags admin
// @Accept json
// @Produce json
// @Param patch body models.ChatbotPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/chatbot [put]
func (ac *AdminController) UpdateChatbotConfig(c *fiber.Ctx) error {
	var patch models.ChatbotPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	chatbot := ac.Catalog.UpdateChatbotConfig(patch)
	ac.record(c, models.ActivityUpdate, "Updated chatbot configuration")
	return utils.Success(c, fiber.StatusOK, fiber.Map{"chatbot": chatbot})
}
