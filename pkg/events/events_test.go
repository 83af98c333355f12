package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (r *recordingConn) Publish(subject string, data []byte) error {
	if r.err != nil {
		return r.err
	}
	r.subjects = append(r.subjects, subject)
	r.payloads = append(r.payloads, data)
	return nil
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "crm.case.moved.42", Subject("crm", "case.moved", "42"))
	assert.Equal(t, "case.moved", Subject("", "case.moved"))
	assert.Equal(t, "crm.case.moved", Subject("crm", "case.moved", ""))
}

func TestNatsPublisherPublishesJSON(t *testing.T) {
	rc := &recordingConn{}
	p := &NatsPublisher{nc: rc, prefix: "crm"}

	err := p.Publish(context.Background(), "case.moved.abc", map[string]string{"case_id": "abc"})
	require.NoError(t, err)

	require.Len(t, rc.subjects, 1)
	assert.Equal(t, "crm.case.moved.abc", rc.subjects[0])

	var got map[string]string
	require.NoError(t, json.Unmarshal(rc.payloads[0], &got))
	assert.Equal(t, "abc", got["case_id"])
}

func TestNatsPublisherErrors(t *testing.T) {
	p := &NatsPublisher{nc: &recordingConn{err: errors.New("closed")}, prefix: "crm"}
	assert.Error(t, p.Publish(context.Background(), "case.moved", struct{}{}))

	p = &NatsPublisher{nc: &recordingConn{}, prefix: "crm"}
	assert.Error(t, p.Publish(context.Background(), "case.moved", make(chan int)))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "anything", nil))
}

type movedEvent struct {
	CaseID string `json:"case_id"`
}

func TestDecodingHandlerPassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var (
		got      []movedEvent
		subjects []string
		ctxs     []context.Context
	)
	h := decoding(ctx, func(ctx context.Context, subject string, ev movedEvent) {
		ctxs = append(ctxs, ctx)
		subjects = append(subjects, subject)
		got = append(got, ev)
	})

	h(&nats.Msg{Subject: "crm.case.moved.1", Data: []byte(`{"case_id":"1"}`)})
	h(&nats.Msg{Subject: "crm.case.moved.2", Data: []byte(`not json`)})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].CaseID)
	assert.Equal(t, "crm.case.moved.1", subjects[0])

	cancel()
	assert.ErrorIs(t, ctxs[0].Err(), context.Canceled, "handlers see the subscription context")

	h(&nats.Msg{Subject: "crm.case.moved.3", Data: []byte(`{"case_id":"3"}`)})
	assert.Len(t, got, 1, "messages after shutdown are dropped")
}
