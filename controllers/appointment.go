// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/services"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookAppointmentInput struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerContact string `json:"customerContact" binding:"required"`
	ServiceName     string `json:"serviceName" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Notes           string `json:"notes"`
}

type UpdateStatusInput struct {
	Status      string  `json:"status" binding:"required,oneof=Pending Confirmed Completed Cancelled"`
	TherapistID *string `json:"therapistId"`
	Note        string  `json:"note"`
	Reason      string  `json:"reason"`
	Override    bool    `json:"override"`
}

type CancelInput struct {
	Reason string `json:"reason"`
}

// BookAppointment creates a Pending appointment for the signed-in customer.
func BookAppointment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateContact(input.CustomerContact) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact: provide a phone number or email")
		return
	}

	svc := services.NewAppointmentService(config.DB)
	appointment, err := svc.Book(services.BookingInput{
		CustomerName:    input.CustomerName,
		CustomerContact: input.CustomerContact,
		ServiceName:     input.ServiceName,
		Date:            input.Date,
		Time:            input.Time,
		Notes:           input.Notes,
		UserID:          &userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidSchedule) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetMyAppointments lists the signed-in customer's bookings, newest first.
func GetMyAppointments(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Where("user_id = ?", userID).
		Order("date DESC, time DESC").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CancelMyAppointment cancels the customer's own Pending appointment.
func CancelMyAppointment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input CancelInput
	_ = c.ShouldBindJSON(&input) // reason is optional

	svc := services.NewAppointmentService(config.DB)
	appointment, err := svc.CancelOwn(appointmentUUID, userID, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, services.ErrNotCancellable):
			utils.RespondWithError(c, http.StatusConflict, "Only pending appointments can be cancelled")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel appointment")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// GetAppointments lists all appointments for the admin area, with optional
// status filtering.
func GetAppointments(c *gin.Context) {
	query := config.DB.Order("date DESC, time DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment is the admin's manual entry path (walk-ins, phone
// bookings with no account).
func CreateAppointment(c *gin.Context) {
	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := services.NewAppointmentService(config.DB)
	appointment, err := svc.Book(services.BookingInput{
		CustomerName:    input.CustomerName,
		CustomerContact: input.CustomerContact,
		ServiceName:     input.ServiceName,
		Date:            input.Date,
		Time:            input.Time,
		Notes:           input.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidSchedule) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointmentStatus drives the status state machine from the admin
// dashboard.
func UpdateAppointmentStatus(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	opts := services.TransitionOptions{
		Note:     input.Note,
		Reason:   input.Reason,
		Override: input.Override,
	}
	if input.TherapistID != nil && *input.TherapistID != "" {
		therapistUUID, err := uuid.Parse(*input.TherapistID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid therapist ID format")
			return
		}
		opts.TherapistID = &therapistUUID
	}

	svc := services.NewAppointmentService(config.DB)
	appointment, err := svc.Transition(appointmentUUID, models.AppointmentStatus(input.Status), opts)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, services.ErrTherapistRequired):
			utils.RespondWithError(c, http.StatusBadRequest, "A therapist must be assigned before confirming")
		case errors.Is(err, services.ErrTherapistNotFound):
			utils.RespondWithError(c, http.StatusBadRequest, "Assigned therapist not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment soft deletes an appointment record.
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("id = ?", appointmentUUID).Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
