package service

import (
	"context"
	"encoding/json"

	"mozi-streaming-be/internal/pkg/logger"
	"mozi-streaming-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the analytics topic. It is the in-process sink for
// exchange events: structured logs today, a warehouse shipper when one exists.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("consumer_service", "failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Ack malformed payloads, retrying cannot fix them.
		msg.Ack()
		return
	}

	details := map[string]interface{}{
		"event_type":  evt.Type,
		"occurred_at": evt.OccurredAt,
	}
	for k, v := range evt.Data {
		details[k] = v
	}
	cs.logger.Info("consumer_service", "chat event consumed", details)

	msg.Ack()
}
