package notifier

import (
	"context"

	"github.com/aleister1102/gistwatch/internal/models"
)

// Sink delivers an alert to one destination.
type Sink interface {
	Name() string
	Notify(ctx context.Context, alert models.Alert) error
}
