package service

import (
	"context"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"
)

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.notifications.List(ctx, userID, pageSize, (page-1)*pageSize)
}

// MarkAsRead is scoped to the owner; marking someone else's
// notification behaves like marking one that does not exist.
func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.notifications.MarkAsRead(ctx, notificationID, userID)
}

type cropService struct {
	crops repository.CropRepository
}

func NewCropService(crops repository.CropRepository) CropService {
	return &cropService{crops: crops}
}

func (s *cropService) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	return s.crops.List(ctx)
}
