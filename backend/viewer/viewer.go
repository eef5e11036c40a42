// Package viewer backs the two-stage content disclosure flow: a metadata
// preview with a classification badge and an embeddable URL, then the full
// interactive view.
package viewer

import "strings"

const (
	CategoryNotes       = "Course Notes"
	CategoryStatute     = "Statute"
	CategoryAssessment  = "Assessment"
	CategoryInteractive = "Interactive"
	CategoryDatabase    = "Database"
	CategoryWeb         = "Web Resource"
)

type rule struct {
	keywords []string
	category string
}

// Order matters: the first matching rule wins.
var rules = []rule{
	{[]string{"note"}, CategoryNotes},
	{[]string{"act", "constitution", "code"}, CategoryStatute},
	{[]string{"quiz"}, CategoryAssessment},
	{[]string{"game"}, CategoryInteractive},
	{[]string{"provider", "law"}, CategoryDatabase},
}

// Classify derives the preview badge category from the resource title by
// case-insensitive keyword match.
func Classify(title string) string {
	t := strings.ToLower(title)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(t, kw) {
				return r.category
			}
		}
	}
	return CategoryWeb
}

// PreviewURL rewrites Google Drive viewer links into their embeddable
// preview shape so the iframe renders the document instead of prompting a
// download. Other URLs pass through untouched. Applied in the preview
// stage only; the full view uses the original URL.
func PreviewURL(url string) string {
	if strings.Contains(url, "drive.google.com") && strings.Contains(url, "/view") {
		return strings.Replace(url, "/view", "/preview", 1)
	}
	return url
}
