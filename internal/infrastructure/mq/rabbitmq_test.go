package mq

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filedrop-api/config"
)

func TestPublisherWorker_ShutdownLeavesInputChanOpen(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.PublisherWorker(ctx)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher worker did not stop on context cancel")
	}

	// a handler finishing mid-shutdown can still publish without panicking
	require.NotPanics(t, func() {
		r.GetInputChan() <- Event{Id: uuid.New(), TS: time.Now(), Method: "POST", Code: "ABCD2345"}
	})

	e := <-r.GetInputChan()
	assert.Equal(t, "ABCD2345", e.Code)
}
