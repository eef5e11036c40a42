package models

type Topic struct {
	ID                    string   `json:"id"`
	Number                int      `json:"number"`
	Title                 string   `json:"title"`
	NotesURL              string   `json:"notesUrl"`
	QuizURL               string   `json:"quizUrl"`
	GameURL               string   `json:"gameUrl"`
	RelatedStatuteIDs     []string `json:"relatedStatuteIds"`
	RelatedCaseSummaryIDs []string `json:"relatedCaseSummaryIds"`
}

type TopicPatch struct {
	Number                *int      `json:"number"`
	Title                 *string   `json:"title"`
	NotesURL              *string   `json:"notesUrl"`
	QuizURL               *string   `json:"quizUrl"`
	GameURL               *string   `json:"gameUrl"`
	RelatedStatuteIDs     *[]string `json:"relatedStatuteIds"`
	RelatedCaseSummaryIDs *[]string `json:"relatedCaseSummaryIds"`
}

func (t *Topic) Apply(p TopicPatch) {
	if p.Number != nil {
		t.Number = *p.Number
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.NotesURL != nil {
		t.NotesURL = *p.NotesURL
	}
	if p.QuizURL != nil {
		t.QuizURL = *p.QuizURL
	}
	if p.GameURL != nil {
		t.GameURL = *p.GameURL
	}
	if p.RelatedStatuteIDs != nil {
		t.RelatedStatuteIDs = *p.RelatedStatuteIDs
	}
	if p.RelatedCaseSummaryIDs != nil {
		t.RelatedCaseSummaryIDs = *p.RelatedCaseSummaryIDs
	}
}

type Statute struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type CaseSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CaseLawProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo string `json:"logo,omitempty"`
}

const (
	ExamCategoryPastYear      = "Past Year"
	ExamCategoryModelQuestion = "Model Question"
	ExamCategoryAnswerKey     = "Answer Key"
)

type ExamResource struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Year     string `json:"year,omitempty"`
	Semester string `json:"semester,omitempty"`
	URL      string `json:"url"`
	TopicID  string `json:"topicId,omitempty"`
}

type ExternalLink struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"` // UniSZA, Judiciary or Research
	URL      string `json:"url"`
}

type LinkPatch struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	URL      *string `json:"url"`
}

func (l *ExternalLink) Apply(p LinkPatch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.URL != nil {
		l.URL = *p.URL
	}
}

type AppSettings struct {
	AppName      string `json:"appName"`
	Organization string `json:"organization"`
	SupportEmail string `json:"supportEmail"`
}

type SettingsPatch struct {
	AppName      *string `json:"appName"`
	Organization *string `json:"organization"`
	SupportEmail *string `json:"supportEmail"`
}

func (s *AppSettings) Apply(p SettingsPatch) {
	if p.AppName != nil {
		s.AppName = *p.AppName
	}
	if p.Organization != nil {
		s.Organization = *p.Organization
	}
	if p.SupportEmail != nil {
		s.SupportEmail = *p.SupportEmail
	}
}

type ChatbotConfig struct {
	Model             string  `json:"model"`
	SystemInstruction string  `json:"systemInstruction"`
	MaxOutputTokens   int     `json:"maxOutputTokens"`
	Temperature       float64 `json:"temperature"`
}

type ChatbotPatch struct {
	Model             *string  `json:"model"`
	SystemInstruction *string  `json:"systemInstruction"`
	MaxOutputTokens   *int     `json:"maxOutputTokens"`
	Temperature       *float64 `json:"temperature"`
}

func (c *ChatbotConfig) Apply(p ChatbotPatch) {
	if p.Model != nil {
		c.Model = *p.Model
	}
	if p.SystemInstruction != nil {
		c.SystemInstruction = *p.SystemInstruction
	}
	if p.MaxOutputTokens != nil {
		c.MaxOutputTokens = *p.MaxOutputTokens
	}
	if p.Temperature != nil {
		c.Temperature = *p.Temperature
	}
}
