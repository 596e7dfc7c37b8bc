package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"leadboard_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublish_DeliversToAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
			wg.Done()
			return nil
		}))
	}

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers were not invoked")
	}
}

func TestPublish_IgnoresUnrelatedEvents(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	called := make(chan struct{}, 1)
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		called <- struct{}{}
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "other.happened"})

	select {
	case <-called:
		t.Fatal("handler invoked for unrelated event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPublishSync_ReturnsFirstErrorAndRunsRemainingHandlers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	wantErr := errors.New("boom")
	secondRan := false
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		return wantErr
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		secondRan = true
		return nil
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected first handler error, got %v", err)
	}
	if !secondRan {
		t.Fatal("second handler did not run after first failed")
	}
}
