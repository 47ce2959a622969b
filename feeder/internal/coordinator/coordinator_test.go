package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/jaconsta/rag-gallery/feeder/internal/mq"
)

func TestHandleChangeEventEnqueuesOntoFeedChannel(t *testing.T) {
	c := &Coordinator{feedCh: make(chan *mq.ChangeEvent, 1)}
	ev := &mq.ChangeEvent{Key: "feeder/abc.jpg"}

	if err := c.HandleChangeEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleChangeEvent: %v", err)
	}

	select {
	case got := <-c.feedCh:
		if got != ev {
			t.Fatalf("feedCh received %v, want %v", got, ev)
		}
	default:
		t.Fatal("feedCh was empty after HandleChangeEvent")
	}
}

func TestHandleChangeEventRespectsContextCancellation(t *testing.T) {
	c := &Coordinator{feedCh: make(chan *mq.ChangeEvent)} // unbuffered, nobody reads

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.HandleChangeEvent(ctx, &mq.ChangeEvent{Key: "feeder/abc.jpg"})
	if err == nil {
		t.Fatal("HandleChangeEvent() = nil, want context deadline error")
	}
}
