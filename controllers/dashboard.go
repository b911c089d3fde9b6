// controllers/dashboard.go
package controllers

import (
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
)

func todayDate() string {
	return time.Now().Format(utils.AppointmentDateLayout)
}

// GetDashboardOverview returns the counters shown on the admin landing page.
func GetDashboardOverview(c *gin.Context) {
	var (
		pending, confirmed, completed, cancelled int64
		customers, therapists                    int64
		unreadMessages, pendingReviews           int64
	)

	config.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&pending)
	config.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusConfirmed).Count(&confirmed)
	config.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCompleted).Count(&completed)
	config.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCancelled).Count(&cancelled)

	config.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&customers)
	config.DB.Model(&models.User{}).Where("role = ? AND is_active = ?", models.RoleTherapist, true).Count(&therapists)

	config.DB.Model(&models.MessageThread{}).Where("read = ?", false).Count(&unreadMessages)
	config.DB.Model(&models.Review{}).Where("approved = ?", false).Count(&pendingReviews)

	// Today's confirmed schedule
	var todays []models.Appointment
	config.DB.Where("date = ? AND status = ?",
		c.DefaultQuery("date", todayDate()), models.StatusConfirmed).
		Order("time").Find(&todays)

	c.JSON(http.StatusOK, gin.H{
		"appointments": gin.H{
			"pending":   pending,
			"confirmed": confirmed,
			"completed": completed,
			"cancelled": cancelled,
		},
		"customers":          customers,
		"activeTherapists":   therapists,
		"unreadMessages":     unreadMessages,
		"pendingReviews":     pendingReviews,
		"todaysAppointments": todays,
	})
}
