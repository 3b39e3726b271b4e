// Package events publishes lifecycle notifications for other instances.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
)

// StatusTopic is the topic status-change events are published on.
const StatusTopic = "actioncodes.status"

// StatusChangeEvent describes a lifecycle transition of an action code.
type StatusChangeEvent struct {
	Code      string      `json:"code"`
	Pubkey    string      `json:"pubkey"`
	Chain     core.Chain  `json:"chain"`
	Previous  core.Status `json:"previous"`
	Status    core.Status `json:"status"`
	Timestamp int64       `json:"timestamp"`
}

// WatermillPublisher implements the event publisher port using Watermill.
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewWatermillPublisher creates a publisher on the default status topic.
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher, topic: StatusTopic}
}

// PublishStatusChange publishes a status-change event.
func (p *WatermillPublisher) PublishStatusChange(ctx context.Context, code *core.ActionCode, previous core.Status) error {
	event := StatusChangeEvent{
		Code:      code.Code,
		Pubkey:    code.Pubkey,
		Chain:     code.Chain,
		Previous:  previous,
		Status:    code.Status,
		Timestamp: code.Timestamp,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(code.Code, payload)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
