package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mylegs/backend/config"
	"mylegs/backend/middleware"
	"mylegs/backend/models"
	"mylegs/backend/session"
	"mylegs/backend/store"
	"mylegs/backend/utils"
)

type AuthController struct {
	Sessions   *session.Manager
	Tiers      *store.TierRegistry
	Progress   *store.Progress
	Activities *store.ActivityLog
	Cfg        *config.Config
}

func NewAuthController(sessions *session.Manager, tiers *store.TierRegistry, progress *store.Progress, activities *store.ActivityLog, cfg *config.Config) *AuthController {
	return &AuthController{Sessions: sessions, Tiers: tiers, Progress: progress, Activities: activities, Cfg: cfg}
}

// Login godoc
// @Summary User login
// @Description Authenticates against the user directory and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// One generic failure for a bad email, a bad password or an inactive
	// account; nothing field-level leaks.
	user, ok := ac.Sessions.Login(input.Email, input.Password)
	if !ok {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.Activities.Record(models.ActivityLogin, user.Email, "Signed in")

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// LoginAsGuest godoc
// @Summary Guest login
// @Description Activates the default free-tier account for browsing
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/guest [post]
func (ac *AuthController) LoginAsGuest(c *fiber.Ctx) error {
	user := ac.Sessions.LoginAsGuest()

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.Activities.Record(models.ActivityLogin, user.Email, "Guest session")

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// LoginAsAdmin godoc
// @Summary Direct admin access
// @Description Activates the first admin directory entry
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/admin [post]
func (ac *AuthController) LoginAsAdmin(c *fiber.Ctx) error {
	user := ac.Sessions.LoginAsAdmin()

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.Activities.Record(models.ActivityLogin, user.Email, "Admin session")

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout godoc
// @Summary End the active session
// @Tags auth
// @Produce json
// @Success 204
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.Sessions.Logout()
	return utils.NoContent(c)
}

// Upgrade godoc
// @Summary Upgrade the active session to premium
// @Description Rewrites the session tier only; the directory record is not changed
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/upgrade [post]
func (ac *AuthController) Upgrade(c *fiber.Ctx) error {
	user, ok := ac.Sessions.UpgradeToPremium()
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user": user,
		"tier": ac.Tiers.Resolve(user.TierID),
	})
}

// GetProfile godoc
// @Summary Get the active user's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/profile [get]
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":            user,
		"tier":            ac.Tiers.Resolve(user.TierID),
		"completedTopics": ac.Progress.Completed(),
		"progress":        ac.Progress.Percentage(),
	})
}
