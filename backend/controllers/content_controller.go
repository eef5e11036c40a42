package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mylegs/backend/middleware"
	"mylegs/backend/models"
	"mylegs/backend/session"
	"mylegs/backend/store"
	"mylegs/backend/utils"
)

type ContentController struct {
	Catalog  *store.Catalog
	Sessions *session.Manager
}

func NewContentController(catalog *store.Catalog, sessions *session.Manager) *ContentController {
	return &ContentController{Catalog: catalog, Sessions: sessions}
}

// topicEntry decorates a topic with its entitlement decision for the
// active tier.
type topicEntry struct {
	models.Topic
	Locked bool `json:"locked"`
}

// GetTopics godoc
// @Summary List the curriculum
// @Description Returns all topics in curriculum order with a lock flag per entry
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /topics [get]
func (cc *ContentController) GetTopics(c *fiber.Ctx) error {
	tier := cc.Sessions.CurrentTier()

	topics := cc.Catalog.Topics()
	entries := make([]topicEntry, len(topics))
	for i, t := range topics {
		entries[i] = topicEntry{Topic: t, Locked: !tier.Unlocks(i)}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"topics": entries,
		"tier":   tier,
	})
}

// GetTopicDetails godoc
// @Summary Get one topic with related material
// @Description Resolves related statutes and case summaries; locked topics get the upgrade prompt
// @Tags content
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /topics/{id} [get]
func (cc *ContentController) GetTopicDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	topic, ok := cc.Catalog.TopicByID(id)
	if !ok {
		return utils.NotFound(c, "Topic not found")
	}

	// Entitlement is positional: the topic's place in the curriculum, not
	// its id, decides the lock.
	index := cc.Catalog.TopicIndex(id)
	if !cc.Sessions.CurrentTier().Unlocks(index) {
		return utils.UpgradeRequired(c, "This module is locked on your current plan")
	}

	statutes := make([]models.Statute, 0, len(topic.RelatedStatuteIDs))
	for _, sid := range topic.RelatedStatuteIDs {
		if s, ok := cc.Catalog.StatuteByID(sid); ok {
			statutes = append(statutes, s)
		}
	}

	cases := make([]models.CaseSummary, 0, len(topic.RelatedCaseSummaryIDs))
	for _, cid := range topic.RelatedCaseSummaryIDs {
		if cs, ok := cc.Catalog.CaseSummaryByID(cid); ok {
			cases = append(cases, cs)
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"topic":         topic,
		"statutes":      statutes,
		"caseSummaries": cases,
	})
}

// GetStatutes godoc
// @Summary List statutes
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /statutes [get]
func (cc *ContentController) GetStatutes(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"statutes": cc.Catalog.Statutes()})
}

// GetCaseSummaries godoc
// @Summary List case summaries
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /cases [get]
func (cc *ContentController) GetCaseSummaries(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"caseSummaries": cc.Catalog.CaseSummaries()})
}

// GetProviders godoc
// @Summary List case-law providers
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /providers [get]
func (cc *ContentController) GetProviders(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"providers": cc.Catalog.Providers()})
}

// GetExamResources godoc
// @Summary List exam resources
// @Tags content
// @Produce json
// @Param category query string false "Filter by category (Past Year|Model Question|Answer Key)"
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /exam-resources [get]
func (cc *ContentController) GetExamResources(c *fiber.Ctx) error {
	category := c.Query("category")
	return utils.Success(c, fiber.StatusOK, fiber.Map{"examResources": cc.Catalog.ExamResources(category)})
}

// GetLinks godoc
// @Summary List external links
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /links [get]
func (cc *ContentController) GetLinks(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"links": cc.Catalog.Links()})
}

// GetSettings godoc
// @Summary App settings for the about/features pages
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /settings [get]
func (cc *ContentController) GetSettings(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"settings": cc.Catalog.Settings()})
}

// SearchJudgments godoc
// @Summary eJudgement search
// @Description Filters the judgment index by court, judge and free text
// @Tags content
// @Accept json
// @Produce json
// @Param query body models.JudgmentQuery true "Search filters"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /judgments/search [post]
func (cc *ContentController) SearchJudgments(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUser(c); !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var query models.JudgmentQuery
	if err := c.BodyParser(&query); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	results := cc.Catalog.SearchJudgments(query)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"results": results})
}
