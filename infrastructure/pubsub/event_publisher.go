package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/pubsub"
	"videotube/infrastructure/logger"
)

// Event names published on the video lifecycle topic.
const (
	EventVideoPublished = "video.published"
	EventVideoDeleted   = "video.deleted"
)

type VideoEvent struct {
	Event      string    `json:"event"`
	VideoID    string    `json:"videoId"`
	OwnerID    string    `json:"ownerId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// IEventPublisher publishes video lifecycle notifications. Publishing is best
// effort; listing and reads never emit events.
type IEventPublisher interface {
	PublishVideoEvent(ctx context.Context, event VideoEvent) error
}

type EventPublisher struct {
	client *pubsub.Client
	topic  string
}

func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID)
}

func NewEventPublisher(client *pubsub.Client, topic string) IEventPublisher {
	return &EventPublisher{client: client, topic: topic}
}

func (p *EventPublisher) PublishVideoEvent(ctx context.Context, event VideoEvent) error {
	if p.client == nil {
		logger.GetLogger().WithField("event", event.Event).Debug("PubSub not available - skipping event publish")
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	topic := p.client.Topic(p.topic)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if _, err = p.client.CreateTopic(ctx, p.topic); err != nil {
			return err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return err
	}
	logger.GetLogger().WithField("serverId", serverID).WithField("event", event.Event).Info("Video event published")
	return nil
}
