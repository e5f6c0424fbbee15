package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restroom-finder/internal/chat"
)

// PostMessageInput is a chat message forwarded by the webhook glue after
// transport and signature concerns have been stripped
type PostMessageInput struct {
	UserID    string  `json:"user_id" binding:"required"`                        // Stable user identifier
	Type      string  `json:"type" binding:"required,oneof=text location"`       // Message type
	Text      string  `json:"text"`                                              // Text content for text messages
	Latitude  float64 `json:"latitude"`                                          // Latitude for location messages
	Longitude float64 `json:"longitude"`                                         // Longitude for location messages
}

// MessageReplyResponse carries the reply text for the chat frontend
type MessageReplyResponse struct {
	Reply string `json:"reply"`
}

// handlePostMessage godoc
// @Summary Handle a chat message
// @Description Turn an incoming chat message into reply text: greetings get usage instructions, shared locations get a list of the nearest public restrooms
// @Tags messages
// @Accept json
// @Produce json
// @Param message body PostMessageInput true "Incoming message"
// @Success 200 {object} MessageReplyResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/messages [post]
func (app *App) handlePostMessage(c *gin.Context) {
	var input PostMessageInput

	// Bind and validate the JSON body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	reply, err := app.chatSvc.Reply(c.Request.Context(), chat.IncomingMessage{
		UserID:    input.UserID,
		Type:      input.Type,
		Text:      input.Text,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		app.logger.Error("failed to handle message",
			"user_id", input.UserID,
			"type", input.Type,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to handle message"})
		return
	}

	c.JSON(http.StatusOK, MessageReplyResponse{Reply: reply})
}
