// Package tutor is the client for the external AI tutoring service. It
// streams completions incrementally and degrades to a fixed apology
// message on any failure; a raw transport fault never reaches the student.
package tutor

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mylegs/backend/models"
)

// MaxImageBytes caps inline image payloads at 5 MB (decoded size).
const MaxImageBytes = 5 * 1024 * 1024

// ApologyMessage replaces the assistant turn when the service fails. The
// conversation stays usable afterwards.
const ApologyMessage = "**System Error:** I could not connect to the legal database. Please check your connection."

// DefaultImagePrompt accompanies an image sent without any text.
const DefaultImagePrompt = "Analyze this image in the context of Malaysian Law."

var ErrImageTooLarge = errors.New("image exceeds 5MB limit")

// Image is an inline attachment, already base64-decoded.
type Image struct {
	MIMEType string
	Data     []byte
}

func (i *Image) Validate() error {
	if len(i.Data) > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}

// Request is one tutoring turn: a free-text prompt, an optional image and
// the admin-configured generation parameters (model, scope instruction,
// token budget, temperature).
type Request struct {
	Prompt string
	Image  *Image
	Config models.ChatbotConfig
}

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 2 * time.Minute},
	}
}

// Stream starts a completion and delivers text chunks as they arrive.
// Cancelling the context abandons the in-flight request; the channel is
// closed either way.
func (c *Client) Stream(ctx context.Context, req Request) *Stream {
	s := &Stream{chunks: make(chan string)}
	go c.run(ctx, req, s)
	return s
}

type Stream struct {
	chunks chan string
	err    error
}

// Chunks yields incremental completion text. The channel is closed when
// the completion finishes, fails or is cancelled.
func (s *Stream) Chunks() <-chan string {
	return s.chunks
}

// Err reports the terminal failure, if any. Only valid after Chunks is
// closed.
func (s *Stream) Err() error {
	return s.err
}

func (c *Client) run(ctx context.Context, req Request, s *Stream) {
	defer close(s.chunks)

	body, err := encodeRequest(req)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s",
		c.baseURL, req.Config.Model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.fail(ctx, fmt.Errorf("tutor service returned %s", resp.Status))
		return
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}
		text, ok := decodeChunk([]byte(payload))
		if !ok || text == "" {
			continue
		}
		select {
		case s.chunks <- text:
		case <-ctx.Done():
			s.err = ctx.Err()
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.fail(ctx, err)
	}
}

// fail records the error and, unless the caller cancelled, delivers the
// apology message as the terminal chunk.
func (s *Stream) fail(ctx context.Context, err error) {
	s.err = err
	if ctx.Err() != nil {
		s.err = ctx.Err()
		return
	}
	select {
	case s.chunks <- ApologyMessage:
	case <-ctx.Done():
		s.err = ctx.Err()
	}
}

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"` // base64 on the wire
}

type generateRequest struct {
	SystemInstruction struct {
		Parts []contentPart `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string        `json:"role"`
		Parts []contentPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		MaxOutputTokens int     `json:"maxOutputTokens"`
		Temperature     float64 `json:"temperature"`
	} `json:"generationConfig"`
}

func encodeRequest(req Request) ([]byte, error) {
	if req.Image != nil {
		if err := req.Image.Validate(); err != nil {
			return nil, err
		}
	}

	prompt := req.Prompt
	if prompt == "" && req.Image != nil {
		prompt = DefaultImagePrompt
	}

	var out generateRequest
	out.SystemInstruction.Parts = []contentPart{{Text: req.Config.SystemInstruction}}

	parts := []contentPart{{Text: prompt}}
	if req.Image != nil {
		parts = append(parts, contentPart{
			InlineData: &inlineData{MIMEType: req.Image.MIMEType, Data: req.Image.Data},
		})
	}
	out.Contents = append(out.Contents, struct {
		Role  string        `json:"role"`
		Parts []contentPart `json:"parts"`
	}{Role: "user", Parts: parts})

	out.GenerationConfig.MaxOutputTokens = req.Config.MaxOutputTokens
	out.GenerationConfig.Temperature = req.Config.Temperature

	return json.Marshal(out)
}

type streamChunk struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func decodeChunk(payload []byte) (string, bool) {
	var chunk streamChunk
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return "", false
	}
	var sb strings.Builder
	for _, cand := range chunk.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), true
}
