package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go-certtrack/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type recordingHandler struct {
	failFirst int
	calls     int
	handled   []events.CertificateLifecycleEvent
}

func (h *recordingHandler) HandleCertificateLifecycle(ctx context.Context, e events.CertificateLifecycleEvent) error {
	h.calls++
	if h.calls <= h.failFirst {
		return errors.New("db unavailable")
	}
	h.handled = append(h.handled, e)
	return nil
}

func message(t *testing.T, offset int64, e events.CertificateLifecycleEvent) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(e)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func TestConsumeCertificateLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	created := events.NewCertificateLifecycleEvent(events.CertificateCreated, "cert-1", "company-1", "user-1", "user-1")
	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			message(t, 1, created),
			{Offset: 2, Value: []byte("not json")},
			message(t, 3, events.CertificateLifecycleEvent{EventType: "certificate.archived"}),
		},
	}
	handler := &recordingHandler{failFirst: 1}

	ConsumeCertificateLifecycle(ctx, reader, handler, zap.NewNop())

	assert.Len(t, handler.handled, 1)
	assert.Equal(t, "cert-1", handler.handled[0].CertificateID)
	assert.Equal(t, 2, handler.calls)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}
