package service

import (
	"context"
	"encoding/json"

	"tech-innovations-be/internal/dto"
	"tech-innovations-be/internal/pkg/logger"
	"tech-innovations-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the view-event topic and turns each event into an
// access-log entry. It is the only consumer of the catalog's event pipeline.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	repo      contract.InnovationRepository
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	repo contract.InnovationRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		repo:      repo,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.InnovationViewedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Warn("access", "Failed to unmarshal view event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	innovation, err := cs.repo.FindById(ctx, payload.InnovationId)
	if err != nil {
		cs.log.Error("access", "Failed to resolve viewed innovation", map[string]interface{}{
			"id":    payload.InnovationId,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}
	if innovation == nil {
		// Record gone between view and processing; nothing to log against.
		msg.Ack()
		return
	}

	cs.log.Info("access", "Innovation detail viewed", map[string]interface{}{
		"id":        innovation.Id,
		"title":     innovation.Title,
		"category":  innovation.Category,
		"viewed_at": payload.ViewedAt,
	})
	msg.Ack()
}
