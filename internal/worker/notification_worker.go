package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/studio-cms/internal/service"
)

// NotificationWorker binds the notification service to the event stream.
// Dispatch is synchronous in-process, so "worker" here means the registered
// subscriber set rather than a goroutine pool.
type NotificationWorker struct {
	notifications *service.NotificationService
	logger        *zap.Logger
}

// NewNotificationWorker builds the worker.
func NewNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{notifications: notifications, logger: logger}
}

// Start subscribes the notification handlers for contact, booking and review
// submissions.
func (w *NotificationWorker) Start() {
	if w.notifications == nil {
		return
	}
	w.notifications.RegisterHandlers()
	w.logger.Info("notification worker subscribed")
}
