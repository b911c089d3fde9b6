// controllers/message.go
package controllers

import (
	"errors"
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/services"
	"serenityspa-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateMessageInput struct {
	Sender  string `json:"sender" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type ReplyInput struct {
	Message string `json:"message" binding:"required"`
}

// CreateMessage receives a contact-form submission.
func CreateMessage(c *gin.Context) {
	var input CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	thread := models.MessageThread{
		Sender:  input.Sender,
		Email:   strings.ToLower(input.Email),
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.MessageNew,
	}

	if err := config.DB.Create(&thread).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "id": thread.ID})
}

// GetMessages lists all threads for the admin inbox, newest first.
func GetMessages(c *gin.Context) {
	var threads []models.MessageThread
	if err := config.DB.Preload("Replies").Order("created_at DESC").
		Find(&threads).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}
	c.JSON(http.StatusOK, threads)
}

// GetMessage retrieves one thread with its replies.
func GetMessage(c *gin.Context) {
	threadUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	var thread models.MessageThread
	if err := config.DB.Preload("Replies").First(&thread, "id = ?", threadUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, thread)
}

// ReplyToMessage appends an admin reply, flips the thread to Replied, and
// drops an inbox notification for the sender when they have an account.
func ReplyToMessage(c *gin.Context) {
	threadUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	var input ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var thread models.MessageThread
	if err := config.DB.First(&thread, "id = ?", threadUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reply := models.MessageReply{
		ThreadID: thread.ID,
		Message:  input.Message,
	}
	if err := config.DB.Create(&reply).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save reply")
		return
	}

	thread.Status = models.MessageReplied
	thread.Read = true
	if err := config.DB.Save(&thread).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update message")
		return
	}

	// Notify the sender's account inbox if one exists for this email
	var sender models.User
	if err := config.DB.Where("email = ?", thread.Email).First(&sender).Error; err == nil {
		notifier := services.NewNotifier(config.DB)
		subject := thread.Subject
		if subject == "" {
			subject = "your message"
		}
		notifier.Notify(sender.ID, "We replied to "+subject, input.Message, models.NotificationMessage)
	}

	c.JSON(http.StatusCreated, reply)
}

// MarkMessageRead flags a thread as read.
func MarkMessageRead(c *gin.Context) {
	threadUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	result := config.DB.Model(&models.MessageThread{}).Where("id = ?", threadUUID).
		Update("read", true)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update message")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// DeleteMessage removes a thread and its replies.
func DeleteMessage(c *gin.Context) {
	threadUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	result := config.DB.Where("id = ?", threadUUID).Delete(&models.MessageThread{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	config.DB.Where("thread_id = ?", threadUUID).Delete(&models.MessageReply{})

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
