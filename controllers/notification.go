// controllers/notification.go
package controllers

import (
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetNotifications lists the signed-in user's inbox, newest first.
func GetNotifications(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead sets read=true on one of the user's notifications.
// Calling it on an already-read notification is a no-op success.
func MarkNotificationRead(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	notificationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	var notification models.Notification
	if err := config.DB.Where("id = ? AND user_id = ?", notificationUUID, userID).
		First(&notification).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Notification not found")
		return
	}

	if !notification.Read {
		if err := config.DB.Model(&notification).Update("read", true).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification")
			return
		}
		notification.Read = true
	}

	c.JSON(http.StatusOK, notification)
}

// MarkAllNotificationsRead flags the whole inbox as read.
func MarkAllNotificationsRead(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// DeleteNotification removes one of the user's own notifications.
func DeleteNotification(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	notificationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", notificationUUID, userID).
		Delete(&models.Notification{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete notification")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
