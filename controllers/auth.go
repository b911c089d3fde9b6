package controllers

import (
	"errors"
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ?", strings.ToLower(input.Email)).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Email:    strings.ToLower(input.Email),
		Name:     input.Name,
		Phone:    input.Phone,
		Password: input.Password, // hashed in BeforeCreate hook
		Role:     models.RoleCustomer,
		IsActive: true,
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    newUser,
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is disabled")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func ChangePassword(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// UploadAvatar stores a profile photo in Cloudinary and saves the URL.
func UploadAvatar(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Photo file is required")
		return
	}

	url, err := utils.UploadImage(c.Request.Context(), file, "avatars")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("photo_url", url).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
