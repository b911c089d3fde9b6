// controllers/review.go
package controllers

import (
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const minReviewLength = 10

type CreateReviewInput struct {
	ServiceName string `json:"serviceName"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"required"`
}

// GetReviews lists approved reviews for the public site.
func GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Where("approved = ?", true).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview submits a review for moderation.
func CreateReview(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if len(strings.TrimSpace(input.Comment)) < minReviewLength {
		utils.RespondWithError(c, http.StatusBadRequest, "Review text is too short")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	review := models.Review{
		UserID:      &user.ID,
		UserName:    user.Name,
		ServiceName: input.ServiceName,
		Rating:      input.Rating,
		Comment:     strings.TrimSpace(input.Comment),
		Approved:    false,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save review")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetAllReviews lists every review for moderation.
func GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ApproveReview publishes a pending review.
func ApproveReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid review ID format")
		return
	}

	result := config.DB.Model(&models.Review{}).Where("id = ?", reviewUUID).
		Update("approved", true)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update review")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review approved"})
}

// DeleteReview removes a review.
func DeleteReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid review ID format")
		return
	}

	result := config.DB.Where("id = ?", reviewUUID).Delete(&models.Review{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
