package nats

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	subject string
	data    []byte
	err     error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subject = subject
	f.data = data
	return f.err
}

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "tracker")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nothing listening", func(t *testing.T) {
		client, err := NewClient("nats://127.0.0.1:1", "tracker")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestProducer_Publish(t *testing.T) {
	pub := &fakePublisher{}
	p := NewProducer(pub)

	err := p.Publish("fleet.board", map[string]int{"drivers": 3})

	require.NoError(t, err)
	assert.Equal(t, "fleet.board", pub.subject)
	var got map[string]int
	require.NoError(t, json.Unmarshal(pub.data, &got))
	assert.Equal(t, 3, got["drivers"])
}

func TestProducer_Publish_Errors(t *testing.T) {
	t.Run("marshal failure", func(t *testing.T) {
		pub := &fakePublisher{}
		err := NewProducer(pub).Publish("sos.active", make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal message")
		assert.Empty(t, pub.subject)
	})

	t.Run("publish failure", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("nats: connection closed")}
		err := NewProducer(pub).Publish("sos.active", []int{1})
		assert.EqualError(t, err, "nats: connection closed")
	})
}
