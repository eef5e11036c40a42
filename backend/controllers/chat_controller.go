package controllers

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"mylegs/backend/session"
	"mylegs/backend/store"
	"mylegs/backend/tutor"
	"mylegs/backend/utils"
)

type ChatController struct {
	Tutor    *tutor.Client
	Catalog  *store.Catalog
	Sessions *session.Manager
}

func NewChatController(client *tutor.Client, catalog *store.Catalog, sessions *session.Manager) *ChatController {
	return &ChatController{Tutor: client, Catalog: catalog, Sessions: sessions}
}

type chatImage struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type chatInput struct {
	Message string     `json:"message"`
	Image   *chatImage `json:"image"`
}

// Chat godoc
// @Summary Ask the AI tutor
// @Description Streams the completion as server-sent events; image analysis is premium-only
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Param input body chatInput true "Prompt and optional inline image"
// @Success 200
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat [post]
func (tc *ChatController) Chat(c *fiber.Ctx) error {
	var input chatInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Message == "" && input.Image == nil {
		return utils.BadRequest(c, "Message or image is required")
	}

	var image *tutor.Image
	if input.Image != nil {
		tier := tc.Sessions.CurrentTier()
		if tier == nil || tier.ID != session.PremiumTierID {
			return utils.UpgradeRequired(c, "Image Analysis is a Premium feature")
		}

		data, err := base64.StdEncoding.DecodeString(input.Image.Data)
		if err != nil {
			return utils.BadRequest(c, "Invalid image encoding")
		}
		image = &tutor.Image{MIMEType: input.Image.MIMEType, Data: data}
		if err := image.Validate(); err != nil {
			return utils.BadRequest(c, "Image too large (max 5MB)")
		}
	}

	// The stream outlives this handler; its context is cancelled from the
	// body writer when the client goes away or the stream drains.
	ctx, cancel := context.WithCancel(context.Background())
	stream := tc.Tutor.Stream(ctx, tutor.Request{
		Prompt: input.Message,
		Image:  image,
		Config: tc.Catalog.ChatbotConfig(),
	})

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for chunk := range stream.Chunks() {
			payload, err := json.Marshal(chunk)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			if err := w.Flush(); err != nil {
				// Client navigated away; cancel abandons the upstream
				// request without blocking anyone.
				return
			}
		}
		fmt.Fprint(w, "event: done\ndata: {}\n\n")
		w.Flush()
	}))

	return nil
}
