package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishOrder(t *testing.T) {
	bus := New(nil)

	var calls []string
	bus.Subscribe("jobPosted", func(any) { calls = append(calls, "first") })
	bus.Subscribe("jobPosted", func(any) { calls = append(calls, "second") })
	bus.Subscribe("modeSwitched", func(any) { calls = append(calls, "other") })

	n := bus.Publish("jobPosted", nil)

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestPayloadDelivered(t *testing.T) {
	bus := New(nil)

	var got any
	bus.Subscribe("modeSwitched", func(p any) { got = p })
	bus.Publish("modeSwitched", "api")

	assert.Equal(t, "api", got)
}

func TestUnsubscribe(t *testing.T) {
	bus := New(nil)

	count := 0
	id := bus.Subscribe("jobPosted", func(any) { count++ })
	bus.Subscribe("jobPosted", func(any) { count += 10 })

	assert.True(t, bus.Unsubscribe("jobPosted", id))
	assert.False(t, bus.Unsubscribe("jobPosted", id))

	bus.Publish("jobPosted", nil)
	assert.Equal(t, 10, count)
	assert.Equal(t, 1, bus.Subscribers("jobPosted"))
}

func TestPanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := New(nil)

	reached := false
	bus.Subscribe("jobPosted", func(any) { panic("boom") })
	bus.Subscribe("jobPosted", func(any) { reached = true })

	assert.NotPanics(t, func() { bus.Publish("jobPosted", nil) })
	assert.True(t, reached)
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	bus := New(nil)

	var calls []string
	var second SubscriptionID
	bus.Subscribe("jobPosted", func(any) {
		calls = append(calls, "first")
		bus.Unsubscribe("jobPosted", second)
	})
	second = bus.Subscribe("jobPosted", func(any) { calls = append(calls, "second") })

	bus.Publish("jobPosted", nil)
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	bus.Publish("jobPosted", nil)
	assert.Equal(t, []string{"first"}, calls)
}
