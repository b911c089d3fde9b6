package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupNotificationTest(t *testing.T) (*gin.Engine, *models.User, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	user := models.User{
		Email:    "inbox@example.com",
		Password: "password123",
		Name:     "Inbox Owner",
		Role:     models.RoleCustomer,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	r := gin.New()
	authed := r.Group("/api", utils.AuthMiddleware())
	authed.GET("/notifications", GetNotifications)
	authed.PUT("/notifications/:id/read", MarkNotificationRead)
	authed.PUT("/notifications/read-all", MarkAllNotificationsRead)
	authed.DELETE("/notifications/:id", DeleteNotification)

	return r, &user, token
}

func doAuthed(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMarkNotificationRead_Idempotent(t *testing.T) {
	r, user, token := setupNotificationTest(t)

	n := models.Notification{
		UserID:  user.ID,
		Title:   "Appointment confirmed",
		Message: "Your Swedish Massage appointment has been confirmed.",
		Type:    models.NotificationAppointment,
	}
	if err := config.DB.Create(&n).Error; err != nil {
		t.Fatalf("create notification: %v", err)
	}

	path := "/api/notifications/" + n.ID.String() + "/read"
	for i := 0; i < 2; i++ {
		w := doAuthed(r, http.MethodPut, path, token)
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: status = %d, body = %s", i+1, w.Code, w.Body.String())
		}
		var got models.Notification
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("call %d: decode: %v", i+1, err)
		}
		if !got.Read {
			t.Fatalf("call %d: read = false, want true", i+1)
		}
	}
}

func TestMarkNotificationRead_OtherUsersHidden(t *testing.T) {
	r, _, token := setupNotificationTest(t)

	other := models.User{
		Email:    "other@example.com",
		Password: "password123",
		Name:     "Other",
		Role:     models.RoleCustomer,
		IsActive: true,
	}
	if err := config.DB.Create(&other).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	n := models.Notification{
		UserID:  other.ID,
		Title:   "Private",
		Message: "Not yours.",
		Type:    models.NotificationSystem,
	}
	if err := config.DB.Create(&n).Error; err != nil {
		t.Fatalf("create notification: %v", err)
	}

	w := doAuthed(r, http.MethodPut, "/api/notifications/"+n.ID.String()+"/read", token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestNotificationList_RequiresAuth(t *testing.T) {
	r, _, _ := setupNotificationTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMarkAllAndDelete(t *testing.T) {
	r, user, token := setupNotificationTest(t)

	for i := 0; i < 3; i++ {
		n := models.Notification{
			UserID:  user.ID,
			Title:   "Update",
			Message: "Something happened.",
			Type:    models.NotificationSystem,
		}
		if err := config.DB.Create(&n).Error; err != nil {
			t.Fatalf("create notification: %v", err)
		}
	}

	if w := doAuthed(r, http.MethodPut, "/api/notifications/read-all", token); w.Code != http.StatusOK {
		t.Fatalf("read-all status = %d", w.Code)
	}
	var unread int64
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", user.ID, false).Count(&unread)
	if unread != 0 {
		t.Fatalf("unread = %d, want 0", unread)
	}

	var first models.Notification
	if err := config.DB.Where("user_id = ?", user.ID).First(&first).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if w := doAuthed(r, http.MethodDelete, "/api/notifications/"+first.ID.String(), token); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := doAuthed(r, http.MethodDelete, "/api/notifications/"+first.ID.String(), token); w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}
