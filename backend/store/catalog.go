package store

import (
	"strings"
	"sync"

	"mylegs/backend/models"
)

// Catalog holds the course content. Topic order is curriculum order: the
// slice index is the position entitlement checks are evaluated against.
// Statutes, case summaries, providers and exam resources have no admin
// surface and stay read-only after seeding.
type Catalog struct {
	mu            sync.RWMutex
	topics        []models.Topic
	statutes      []models.Statute
	caseSummaries []models.CaseSummary
	providers     []models.CaseLawProvider
	examResources []models.ExamResource
	links         []models.ExternalLink
	judgments     []models.Judgment
	settings      models.AppSettings
	chatbot       models.ChatbotConfig
}

type CatalogSeed struct {
	Topics        []models.Topic
	Statutes      []models.Statute
	CaseSummaries []models.CaseSummary
	Providers     []models.CaseLawProvider
	ExamResources []models.ExamResource
	Links         []models.ExternalLink
	Judgments     []models.Judgment
	Settings      models.AppSettings
	Chatbot       models.ChatbotConfig
}

func NewCatalog(seed CatalogSeed) *Catalog {
	return &Catalog{
		topics:        append([]models.Topic(nil), seed.Topics...),
		statutes:      append([]models.Statute(nil), seed.Statutes...),
		caseSummaries: append([]models.CaseSummary(nil), seed.CaseSummaries...),
		providers:     append([]models.CaseLawProvider(nil), seed.Providers...),
		examResources: append([]models.ExamResource(nil), seed.ExamResources...),
		links:         append([]models.ExternalLink(nil), seed.Links...),
		judgments:     append([]models.Judgment(nil), seed.Judgments...),
		settings:      seed.Settings,
		chatbot:       seed.Chatbot,
	}
}

// --- Topics ---

func (c *Catalog) Topics() []models.Topic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

func (c *Catalog) TopicByID(id string) (models.Topic, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.topics {
		if t.ID == id {
			return t, true
		}
	}
	return models.Topic{}, false
}

// TopicIndex returns the curriculum position of a topic, or -1 when the id
// is unknown. Entitlement is decided by this position, not the id.
func (c *Catalog) TopicIndex(id string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i, t := range c.topics {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) AddTopic(topic models.Topic) models.Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics = append(c.topics, topic)
	return topic
}

func (c *Catalog) UpdateTopic(id string, patch models.TopicPatch) (models.Topic, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.topics {
		if c.topics[i].ID == id {
			c.topics[i].Apply(patch)
			return c.topics[i], nil
		}
	}
	return models.Topic{}, ErrNotFound
}

func (c *Catalog) DeleteTopic(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.topics {
		if c.topics[i].ID == id {
			c.topics = append(c.topics[:i], c.topics[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (c *Catalog) TopicCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.topics)
}

// --- Read-only collections ---

func (c *Catalog) Statutes() []models.Statute {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Statute, len(c.statutes))
	copy(out, c.statutes)
	return out
}

func (c *Catalog) StatuteByID(id string) (models.Statute, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statutes {
		if s.ID == id {
			return s, true
		}
	}
	return models.Statute{}, false
}

func (c *Catalog) CaseSummaries() []models.CaseSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CaseSummary, len(c.caseSummaries))
	copy(out, c.caseSummaries)
	return out
}

func (c *Catalog) CaseSummaryByID(id string) (models.CaseSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cs := range c.caseSummaries {
		if cs.ID == id {
			return cs, true
		}
	}
	return models.CaseSummary{}, false
}

func (c *Catalog) Providers() []models.CaseLawProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CaseLawProvider, len(c.providers))
	copy(out, c.providers)
	return out
}

// ExamResources returns exam material, optionally filtered by category.
func (c *Catalog) ExamResources(category string) []models.ExamResource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.ExamResource, 0, len(c.examResources))
	for _, e := range c.examResources {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// --- External links ---

func (c *Catalog) Links() []models.ExternalLink {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.ExternalLink, len(c.links))
	copy(out, c.links)
	return out
}

func (c *Catalog) AddLink(link models.ExternalLink) models.ExternalLink {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.links = append(c.links, link)
	return link
}

func (c *Catalog) UpdateLink(id string, patch models.LinkPatch) (models.ExternalLink, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.links {
		if c.links[i].ID == id {
			c.links[i].Apply(patch)
			return c.links[i], nil
		}
	}
	return models.ExternalLink{}, ErrNotFound
}

func (c *Catalog) DeleteLink(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.links {
		if c.links[i].ID == id {
			c.links = append(c.links[:i], c.links[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// --- Judgments ---

// SearchJudgments filters the seeded judgment set. Matching is
// case-insensitive substring; empty fields match everything.
func (c *Catalog) SearchJudgments(q models.JudgmentQuery) []models.Judgment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Judgment, 0)
	for _, j := range c.judgments {
		if q.Category != "" && !strings.EqualFold(j.Court, q.Category) {
			continue
		}
		if q.JudgeName != "" && !matchesJudge(j, q.JudgeName) {
			continue
		}
		if q.GeneralSearch != "" && !matchesGeneral(j, q.GeneralSearch) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesJudge(j models.Judgment, name string) bool {
	needle := strings.ToLower(name)
	for _, judge := range j.Quorum {
		if strings.Contains(strings.ToLower(judge), needle) {
			return true
		}
	}
	return false
}

func matchesGeneral(j models.Judgment, term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(j.CaseNo), needle) ||
		strings.Contains(strings.ToLower(j.Parties.Appellant), needle) ||
		strings.Contains(strings.ToLower(j.Parties.Respondent), needle) {
		return true
	}
	for _, kw := range j.Keywords {
		if strings.Contains(strings.ToLower(kw), needle) {
			return true
		}
	}
	return false
}

// --- Settings and chatbot configuration ---

func (c *Catalog) Settings() models.AppSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

func (c *Catalog) UpdateSettings(patch models.SettingsPatch) models.AppSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Apply(patch)
	return c.settings
}

func (c *Catalog) ChatbotConfig() models.ChatbotConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.chatbot
}

func (c *Catalog) UpdateChatbotConfig(patch models.ChatbotPatch) models.ChatbotConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chatbot.Apply(patch)
	return c.chatbot
}
