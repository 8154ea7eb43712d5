package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedDeliversInSubscriptionOrder(t *testing.T) {
	feed := NewFeed()
	var got []string

	feed.Subscribe(func(f float64) { got = append(got, "a") })
	feed.Subscribe(func(f float64) { got = append(got, "b") })
	feed.Publish(0.3)

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFeedReplaysLastFractionToLateSubscriber(t *testing.T) {
	feed := NewFeed()
	feed.Publish(0.4)

	var got []float64
	feed.Subscribe(func(f float64) { got = append(got, f) })
	assert.Equal(t, []float64{0.4}, got)
}

func TestFeedUnsubscribeIsIdempotent(t *testing.T) {
	feed := NewFeed()
	calls := 0
	unsub := feed.Subscribe(func(float64) { calls++ })

	unsub()
	unsub()
	feed.Publish(1)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, feed.Listeners())
}

func TestFeedListenerMayUnsubscribeDuringPublish(t *testing.T) {
	feed := NewFeed()
	var unsub func()
	first, second := 0, 0
	unsub = feed.Subscribe(func(float64) {
		first++
		unsub()
	})
	feed.Subscribe(func(float64) { second++ })

	feed.Publish(0.1)
	feed.Publish(0.2)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}
