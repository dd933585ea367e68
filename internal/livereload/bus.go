package livereload

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicAssetChanged carries asset-change events from the watcher to
// whoever fans them out to browsers.
const TopicAssetChanged = "livereload.asset-changed"

// Bus is an in-process publisher/subscriber for asset-change events,
// backed by watermill's GoChannel.
type Bus struct {
	pub message.Publisher
	sub message.Subscriber
}

// NewBus creates an in-memory Bus.
func NewBus() *Bus {
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	return &Bus{pub: goChannel, sub: goChannel}
}

// Publish announces that the asset at path changed.
func (b *Bus) Publish(path string) error {
	msg := message.NewMessage(watermill.NewUUID(), []byte(path))
	return b.pub.Publish(TopicAssetChanged, msg)
}

// Subscribe invokes fn with the changed path for every published
// event. It returns once the subscription is active; delivery happens
// on a background goroutine until ctx is canceled.
func (b *Bus) Subscribe(ctx context.Context, fn func(path string)) error {
	messages, err := b.sub.Subscribe(ctx, TopicAssetChanged)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			fn(string(msg.Payload))
			msg.Ack()
		}
		slog.Debug("Live reload subscription closed")
	}()

	return nil
}

// Close shuts the underlying pub/sub down, terminating all
// subscriptions.
func (b *Bus) Close() error {
	return b.pub.Close()
}
