package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-certtrack/internal/messaging/kafka"
	kafkaMock "go-certtrack/internal/messaging/kafka/mock"
	"go-certtrack/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	fail    map[string]bool
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.fail[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestRelay_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks each event", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &fakeWriter{fail: map[string]bool{"cert-2": true}}
		relay := producer.NewRelay(repo, producer.NewKafkaPublisher(writer), zap.NewNop(), 0)

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "o1", AggregateID: "cert-1", EventType: "certificate.created", Topic: "t", Payload: []byte(`{}`), RequestID: "rid-1"},
			{ID: "o2", AggregateID: "cert-2", EventType: "certificate.updated", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o1").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "o2", "broker unavailable").Return(nil)

		sent, err := relay.RunOnce(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)

		assert.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "cert-1", string(msg.Key))
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("rid-1")})
	})

	t.Run("list error", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		relay := producer.NewRelay(repo, producer.NewKafkaPublisher(&fakeWriter{}), zap.NewNop(), 0)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := relay.RunOnce(ctx)
		assert.Error(t, err)
	})
}

func TestRelay_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without retention", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		relay := producer.NewRelay(repo, producer.NewKafkaPublisher(&fakeWriter{}), zap.NewNop(), 0)

		n, err := relay.Purge(ctx)
		assert.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("deletes rows older than retention", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		relay := producer.NewRelay(repo, producer.NewKafkaPublisher(&fakeWriter{}), zap.NewNop(), 0).
			WithRetention(72 * time.Hour)

		before := time.Now().Add(-72 * time.Hour)
		repo.EXPECT().PurgeSent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, before, cutoff, time.Minute)
			return 4, nil
		})

		n, err := relay.Purge(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}
