package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookwell/scheduler-api/internal/models"
	"github.com/bookwell/scheduler-api/internal/notify"
)

// NotificationGormRepository is the notification sink: appending a row is
// the whole delivery.
type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Append(
	ctx context.Context,
	userID uint,
	message string,
) error {
	n := models.Notification{
		UserID:  userID,
		Message: message,
	}
	return r.db.WithContext(ctx).Create(&n).Error
}

func (r *NotificationGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Notification, error) {

	var ns []models.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	userID uint,
	notificationID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ notify.Sink = (*NotificationGormRepository)(nil)
