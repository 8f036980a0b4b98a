package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFeed_UnsubscribeDuringPublish(t *testing.T) {
	feed := NewKeyFeed()
	var got []string

	var sub Subscription
	sub = feed.SubscribeKeys(func(k string) {
		got = append(got, "first:"+k)
		sub.Unsubscribe()
	})
	feed.SubscribeKeys(func(k string) {
		got = append(got, "second:"+k)
	})

	feed.Publish("a")
	feed.Publish("b")

	assert.Equal(t, []string{"first:a", "second:a", "second:b"}, got)
	assert.Equal(t, 1, feed.Subscribers())
}

func TestViewportFeed(t *testing.T) {
	feed := NewViewportFeed(80)
	assert.Equal(t, 80, feed.Width())

	var widths []int
	sub := feed.SubscribeViewport(func(w int) { widths = append(widths, w) })
	feed.Publish(120)
	assert.Equal(t, 120, feed.Width())

	sub.Unsubscribe()
	sub.Unsubscribe()
	feed.Publish(60)

	assert.Equal(t, []int{120}, widths)
	assert.Equal(t, 0, feed.Subscribers())
}
