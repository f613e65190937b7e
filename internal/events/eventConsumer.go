package events

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/huelib/internal/constants"
)

type EventConsumer struct {
	Logger *log.Logger

	client *sse.Client
}

// StreamURL returns the event stream URL of the bridge at address.
func StreamURL(address string) string {
	if strings.Contains(address, "://") {
		return strings.TrimSuffix(address, "/") + constants.EventStreamPath
	}
	return fmt.Sprintf("https://%s%s", address, constants.EventStreamPath)
}

func NewEventConsumer(logger *log.Logger, url, applicationKey string) *EventConsumer {
	client := sse.NewClient(url)
	client.Connection.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	client.Headers["hue-application-key"] = applicationKey

	h := &EventConsumer{Logger: logger, client: client}
	client.OnConnect(func(_ *sse.Client) {
		h.Logger.Info("Connected to HUE bridge, listening for events...")
	})
	client.OnDisconnect(func(_ *sse.Client) {
		h.Logger.Info("Disconnected from HUE bridge")
	})
	return h
}

// Subscribe calls handler for every event batch until ctx is done.
// Messages that cannot be decoded are logged and skipped.
func (h *EventConsumer) Subscribe(ctx context.Context, handler func(Event)) error {
	eventChannel := make(chan *sse.Event)
	if err := h.client.SubscribeChanWithContext(ctx, "", eventChannel); err != nil {
		return fmt.Errorf("error subscribing to bridge events: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			h.Logger.Debug("Unsubscribe events")
			return nil
		case msg := <-eventChannel:
			if msg == nil || len(msg.Data) == 0 {
				continue
			}
			batches, err := Decode(msg.Data)
			if err != nil {
				h.Logger.Warn("unable to decode event", "err", err)
				continue
			}
			for _, e := range batches {
				handler(e)
			}
		}
	}
}
