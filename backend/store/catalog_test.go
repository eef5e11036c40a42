package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mylegs/backend/models"
)

func seededCatalog() *Catalog {
	return NewCatalog(SeedCatalog())
}

func TestTopicIndexFollowsCurriculumOrder(t *testing.T) {
	c := seededCatalog()

	assert.Equal(t, 0, c.TopicIndex("t1"))
	assert.Equal(t, 9, c.TopicIndex("t10"))
	assert.Equal(t, -1, c.TopicIndex("missing"))
}

func TestTopicCRUD(t *testing.T) {
	c := seededCatalog()
	before := c.TopicCount()

	added := c.AddTopic(models.Topic{ID: "t11", Number: 11, Title: "Cyber Law"})
	assert.Equal(t, before+1, c.TopicCount())
	assert.Equal(t, before, c.TopicIndex(added.ID))

	title := "Cyber Law & Data Protection"
	updated, err := c.UpdateTopic("t11", models.TopicPatch{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	assert.NoError(t, c.DeleteTopic("t11"))
	assert.Equal(t, before, c.TopicCount())

	_, err = c.UpdateTopic("t11", models.TopicPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, c.DeleteTopic("t11"), ErrNotFound)
}

func TestExamResourcesCategoryFilter(t *testing.T) {
	c := seededCatalog()

	all := c.ExamResources("")
	assert.NotEmpty(t, all)

	past := c.ExamResources(models.ExamCategoryPastYear)
	assert.NotEmpty(t, past)
	assert.Less(t, len(past), len(all))
	for _, r := range past {
		assert.Equal(t, models.ExamCategoryPastYear, r.Category)
	}
}

func TestLinkCRUD(t *testing.T) {
	c := seededCatalog()
	before := len(c.Links())

	link := c.AddLink(models.ExternalLink{ID: "m9", Category: "Research", Title: "SSRN", URL: "https://ssrn.com"})
	assert.Len(t, c.Links(), before+1)

	url := "https://papers.ssrn.com"
	updated, err := c.UpdateLink(link.ID, models.LinkPatch{URL: &url})
	assert.NoError(t, err)
	assert.Equal(t, url, updated.URL)

	assert.NoError(t, c.DeleteLink(link.ID))
	assert.Len(t, c.Links(), before)
}

func TestSearchJudgmentsByCourt(t *testing.T) {
	c := seededCatalog()

	hits := c.SearchJudgments(models.JudgmentQuery{Category: "mahkamah persekutuan"})
	assert.NotEmpty(t, hits)

	none := c.SearchJudgments(models.JudgmentQuery{Category: "Mahkamah Tinggi Shah Alam"})
	assert.Empty(t, none)
}

func TestSearchJudgmentsByJudgeAndKeyword(t *testing.T) {
	c := seededCatalog()

	byJudge := c.SearchJudgments(models.JudgmentQuery{JudgeName: "wan ahmad farid"})
	assert.NotEmpty(t, byJudge)

	byKeyword := c.SearchJudgments(models.JudgmentQuery{GeneralSearch: "pengampunan"})
	assert.NotEmpty(t, byKeyword)

	noHit := c.SearchJudgments(models.JudgmentQuery{GeneralSearch: "zzzz-no-such-term"})
	assert.Empty(t, noHit)
}

func TestSearchJudgmentsEmptyQueryMatchesAll(t *testing.T) {
	c := seededCatalog()
	assert.Len(t, c.SearchJudgments(models.JudgmentQuery{}), len(SeedCatalog().Judgments))
}

func TestSettingsPatch(t *testing.T) {
	c := seededCatalog()

	name := "MyLegS 2.0"
	settings := c.UpdateSettings(models.SettingsPatch{AppName: &name})
	assert.Equal(t, "MyLegS 2.0", settings.AppName)
	assert.Equal(t, "MyLegS 2.0", c.Settings().AppName)
}
