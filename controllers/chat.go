// controllers/chat.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/services"
	"serenityspa-backend/services/assistant"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
)

// chatManager holds all live concierge sessions for the process.
var chatManager = assistant.NewManager(assistant.DefaultTypingDelay)

type ChatMessageInput struct {
	Text string `json:"text" binding:"required"`
}

// CreateChatSession opens a session and returns its greeting.
func CreateChatSession(c *gin.Context) {
	session := chatManager.Create()
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"turns":     session.Turns(),
	})
}

// GetChatSession returns a session's full turn log.
func GetChatSession(c *gin.Context) {
	session, err := chatManager.Get(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Chat session not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID,
		"turns":     session.Turns(),
	})
}

// PostChatMessage feeds a visitor message through the intent matcher and
// returns the assistant's turn.
func PostChatMessage(c *gin.Context) {
	session, err := chatManager.Get(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Chat session not found")
		return
	}

	var input ChatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// A missing catalog is not fatal: the matcher degrades to its fallback.
	catalog, err := services.ActiveServices(c.Request.Context(), config.DB)
	if err != nil {
		catalog = nil
	}

	turn, err := chatManager.Ask(c.Request.Context(), session, input.Text, catalog)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.Status(http.StatusRequestTimeout)
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to process message")
		return
	}

	c.JSON(http.StatusOK, turn)
}
