package ports

import (
	"context"

	"github.com/actioncodesorg/actioncodes/core"
)

// EventPublisher announces status changes to other instances.
type EventPublisher interface {
	PublishStatusChange(ctx context.Context, code *core.ActionCode, previous core.Status) error
}
