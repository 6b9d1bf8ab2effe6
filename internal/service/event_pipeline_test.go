package service_test

import (
	"context"
	"testing"
	"time"

	"tech-innovations-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger forwards Info details so the test can wait for the consumer.
type captureLogger struct {
	nopLogger
	infos chan map[string]interface{}
}

func (l captureLogger) Info(module, message string, details map[string]interface{}) {
	l.infos <- details
}

func TestViewEventPipeline(t *testing.T) {
	ctx := context.Background()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := seededRepository()

	log := captureLogger{infos: make(chan map[string]interface{}, 1)}
	consumer := service.NewConsumerService(pubSub, "INNOVATION_VIEWED", repo, log)
	require.NoError(t, consumer.Consume(ctx))

	publisher := service.NewPublisherService("INNOVATION_VIEWED", pubSub)
	svc := service.NewCatalogService(repo, publisher, log)

	res, err := svc.Show(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, res)

	select {
	case details := <-log.infos:
		assert.Equal(t, 1, details["id"])
		assert.Equal(t, "Quantum", details["title"])
	case <-time.After(2 * time.Second):
		t.Fatal("view event was not consumed")
	}
}
