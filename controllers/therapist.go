// controllers/therapist.go
package controllers

import (
	"errors"
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateTherapistInput struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
}

type UpdateTherapistInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
	Bio       *string `json:"bio"`
	PhotoURL  *string `json:"photoUrl"`
	IsActive  *bool   `json:"isActive"`
}

// GetTherapists lists active therapists for the public team page.
func GetTherapists(c *gin.Context) {
	var therapists []models.User
	if err := config.DB.Where("role = ? AND is_active = ?", models.RoleTherapist, true).
		Order("name").Find(&therapists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve therapists")
		return
	}
	c.JSON(http.StatusOK, therapists)
}

// GetAllTherapists lists every therapist account for the admin area.
func GetAllTherapists(c *gin.Context) {
	var therapists []models.User
	if err := config.DB.Where("role = ?", models.RoleTherapist).
		Order("name").Find(&therapists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve therapists")
		return
	}
	c.JSON(http.StatusOK, therapists)
}

// CreateTherapist registers a therapist account.
func CreateTherapist(c *gin.Context) {
	var input CreateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.User
	result := config.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	therapist := models.User{
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		Password:  input.Password, // hashed in BeforeCreate hook
		Role:      models.RoleTherapist,
		Specialty: input.Specialty,
		Bio:       input.Bio,
		IsActive:  true,
	}

	if err := config.DB.Create(&therapist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create therapist")
		return
	}

	c.JSON(http.StatusCreated, therapist)
}

// UpdateTherapist updates a therapist profile.
func UpdateTherapist(c *gin.Context) {
	therapistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid therapist ID format")
		return
	}

	var input UpdateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var therapist models.User
	if err := config.DB.Where("id = ? AND role = ?", therapistUUID, models.RoleTherapist).
		First(&therapist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Therapist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		therapist.Name = *input.Name
	}
	if input.Phone != nil {
		therapist.Phone = *input.Phone
	}
	if input.Specialty != nil {
		therapist.Specialty = *input.Specialty
	}
	if input.Bio != nil {
		therapist.Bio = *input.Bio
	}
	if input.PhotoURL != nil {
		therapist.PhotoURL = *input.PhotoURL
	}
	if input.IsActive != nil {
		therapist.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&therapist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update therapist")
		return
	}

	c.JSON(http.StatusOK, therapist)
}

// DeleteTherapist soft deletes a therapist account.
func DeleteTherapist(c *gin.Context) {
	therapistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid therapist ID format")
		return
	}

	result := config.DB.Where("id = ? AND role = ?", therapistUUID, models.RoleTherapist).
		Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete therapist")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Therapist not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Therapist deleted successfully"})
}
