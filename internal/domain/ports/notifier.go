package ports

import (
	"context"

	"leetrank/internal/domain/model"
)

// Notifier sends digest notifications to downstream channels (e.g. Discord).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
