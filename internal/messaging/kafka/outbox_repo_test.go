package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := NewOutboxEvent("rid", "certificate", "cert-1", "certificate.created", "topic", map[string]string{"a": "b"})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, OutboxStatusPending, event.Status)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "b", payload["a"])

	_, err = NewOutboxEvent("rid", "certificate", "cert-1", "certificate.created", "", nil)
	assert.Error(t, err)
}

func TestOutboxRepository_CreateUsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event, err := NewOutboxEvent("rid", "certificate", "cert-1", "certificate.created", "topic", struct{}{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, "rid", "certificate", "cert-1", "certificate.created", "topic", event.Payload, OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM outbox_events").
		WithArgs(OutboxStatusSent, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := NewOutboxRepository(db).PurgeSent(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{ID: "o1", AggregateID: "cert-1", EventType: "certificate.created", Topic: "t", Payload: []byte(`{}`), Status: OutboxStatusPending}
	assert.NoError(t, ValidateOutboxEvent(valid))

	missingAggregate := valid
	missingAggregate.AggregateID = ""
	assert.Error(t, ValidateOutboxEvent(missingAggregate))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	due := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).
		AddRow("o1", "rid-1", "certificate", "cert-1", "certificate.created", "t", []byte(`{}`), OutboxStatusPending, 0, due).
		AddRow("o2", "", "certificate", "cert-2", "certificate.deleted", "t", []byte(`{}`), OutboxStatusFailed, 3, due)
	mock.ExpectQuery("FROM outbox_events").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, MaxOutboxRetries, 20).
		WillReturnRows(rows)

	events, err := NewOutboxRepository(db).ListPending(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "rid-1", events[0].RequestID)
	assert.Equal(t, "cert-2", events[1].AggregateID)
	assert.Equal(t, 3, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedSchedulesRetry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("o1", OutboxStatusFailed, "broker unavailable", MaxOutboxRetries, float64(15)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewOutboxRepository(db).MarkFailed(context.Background(), "o1", "broker unavailable")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
