package viewer

import "errors"

type Stage int

const (
	StageClosed Stage = iota
	StagePreview
	StageFullView
)

var ErrInvalidTransition = errors.New("invalid viewer transition")

// Resource is the externally addressed content shown by the viewer.
type Resource struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Session is the disclosure state machine:
// Closed -> Preview -> FullView -> Closed, with Preview -> Closed on
// cancel. Loading and error flags are tracked per stage; Refresh resets
// both for the current stage.
type Session struct {
	stage    Stage
	resource Resource
	loading  bool
	failed   bool
}

func NewSession() *Session {
	return &Session{stage: StageClosed}
}

func (s *Session) Stage() Stage {
	return s.stage
}

func (s *Session) Resource() Resource {
	return s.resource
}

// Open enters the preview stage for a resource.
func (s *Session) Open(r Resource) error {
	if s.stage != StageClosed {
		return ErrInvalidTransition
	}
	s.stage = StagePreview
	s.resource = r
	s.loading = r.URL != ""
	s.failed = false
	return nil
}

// Advance moves from preview to the full interactive view.
func (s *Session) Advance() error {
	if s.stage != StagePreview {
		return ErrInvalidTransition
	}
	s.stage = StageFullView
	s.loading = true
	s.failed = false
	return nil
}

// Close leaves the viewer from either stage.
func (s *Session) Close() {
	s.stage = StageClosed
	s.resource = Resource{}
	s.loading = false
	s.failed = false
}

// Loaded marks the current stage's embed as rendered.
func (s *Session) Loaded() {
	s.loading = false
}

// Failed marks a load error; the stage shows its error state until an
// explicit Refresh.
func (s *Session) Failed() {
	s.loading = false
	s.failed = true
}

// Refresh restarts the current stage's load, clearing both flags.
func (s *Session) Refresh() error {
	if s.stage == StageClosed {
		return ErrInvalidTransition
	}
	s.loading = true
	s.failed = false
	return nil
}

func (s *Session) Loading() bool {
	return s.loading
}

func (s *Session) HasError() bool {
	return s.failed
}

// EmbedURL is the address the current stage embeds: the rewritten preview
// URL during preview, the original URL in full view, empty when closed.
func (s *Session) EmbedURL() string {
	switch s.stage {
	case StagePreview:
		return PreviewURL(s.resource.URL)
	case StageFullView:
		return s.resource.URL
	default:
		return ""
	}
}
