package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		title    string
		category string
	}{
		{"Topic 1 Notes", CategoryNotes},
		{"Federal Constitution", CategoryStatute},
		{"Contracts Act 1950", CategoryStatute},
		{"Penal Code", CategoryStatute},
		{"Chapter 3 Quiz", CategoryAssessment},
		{"Revision Game", CategoryInteractive},
		{"CLJ Law Provider", CategoryDatabase},
		{"Random Website", CategoryWeb},
		{"", CategoryWeb},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.category, Classify(tc.title), "title %q", tc.title)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryNotes, Classify("LECTURE NOTES"))
	assert.Equal(t, CategoryStatute, Classify("civil law ACT"))
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// "note" outranks "act" and "quiz" outranks "law".
	assert.Equal(t, CategoryNotes, Classify("Notes on the Contracts Act"))
	assert.Equal(t, CategoryAssessment, Classify("Law Quiz"))
}

func TestPreviewURLRewritesDriveLinks(t *testing.T) {
	in := "https://drive.google.com/file/d/abc123/view"
	assert.Equal(t, "https://drive.google.com/file/d/abc123/preview", PreviewURL(in))
}

func TestPreviewURLLeavesOtherLinksAlone(t *testing.T) {
	in := "https://example.com/view/page"
	assert.Equal(t, in, PreviewURL(in))

	already := "https://drive.google.com/file/d/abc123/preview"
	assert.Equal(t, already, PreviewURL(already))
}

func TestSessionHappyPath(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StageClosed, s.Stage())
	assert.Equal(t, "", s.EmbedURL())

	r := Resource{ID: "s1", Title: "Federal Constitution", URL: "https://drive.google.com/file/d/abc/view"}
	assert.NoError(t, s.Open(r))
	assert.Equal(t, StagePreview, s.Stage())
	assert.True(t, s.Loading())
	assert.Equal(t, "https://drive.google.com/file/d/abc/preview", s.EmbedURL())

	s.Loaded()
	assert.False(t, s.Loading())

	assert.NoError(t, s.Advance())
	assert.Equal(t, StageFullView, s.Stage())
	assert.True(t, s.Loading())
	assert.Equal(t, r.URL, s.EmbedURL())

	s.Close()
	assert.Equal(t, StageClosed, s.Stage())
	assert.Equal(t, Resource{}, s.Resource())
}

func TestSessionInvalidTransitions(t *testing.T) {
	s := NewSession()

	assert.ErrorIs(t, s.Advance(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Refresh(), ErrInvalidTransition)

	assert.NoError(t, s.Open(Resource{ID: "s1", URL: "https://example.com"}))
	assert.ErrorIs(t, s.Open(Resource{ID: "s2"}), ErrInvalidTransition)

	assert.NoError(t, s.Advance())
	assert.ErrorIs(t, s.Advance(), ErrInvalidTransition)
}

func TestSessionFailureAndRefresh(t *testing.T) {
	s := NewSession()
	s.Open(Resource{ID: "s1", URL: "https://example.com"})

	s.Failed()
	assert.False(t, s.Loading())
	assert.True(t, s.HasError())

	assert.NoError(t, s.Refresh())
	assert.True(t, s.Loading())
	assert.False(t, s.HasError())
}

func TestSessionOpenWithoutURLSkipsLoading(t *testing.T) {
	s := NewSession()
	s.Open(Resource{ID: "s1", Title: "No link"})
	assert.False(t, s.Loading())
}
