// services/notification_service.go
package services

import (
	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier writes inbox entries for users. Delivery is fire-and-forget:
// failures are logged and never surfaced to the caller.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// Notify appends an unread entry to the user's inbox.
func (n *Notifier) Notify(userID uuid.UUID, title, message, notifType string) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	if err := n.db.Create(&notification).Error; err != nil {
		utils.GetLogger().Error("Failed to write notification",
			zap.String("userId", userID.String()),
			zap.String("title", title),
			zap.Error(err),
		)
	}
}
