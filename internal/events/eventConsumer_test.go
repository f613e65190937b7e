package events_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/constants"
	"github.com/wheelibin/huelib/internal/events"
)

const lightUpdate = `[{
	"creationtime": "2024-03-01T20:15:03Z",
	"id": "9f8e2c6e-1c43-4f3a-9d9b-4b8f0f6c2a11",
	"type": "update",
	"data": [
		{"id": "b2a3c1d4-0000-4000-8000-000000000001", "id_v1": "/lights/3", "type": "light", "on": {"on": true}, "dimming": {"brightness": 42.5}},
		{"id": "b2a3c1d4-0000-4000-8000-000000000002", "type": "zigbee_connectivity", "status": "connectivity_issue"}
	]
}]`

func Test_Decode(t *testing.T) {

	t.Run("should decode event batches", func(t *testing.T) {
		// act
		batches, err := events.Decode([]byte(lightUpdate))

		// assert
		require.NoError(t, err)
		require.Len(t, batches, 1)
		assert.Equal(t, constants.EventBatchTypeUpdate, batches[0].Type)
		require.Len(t, batches[0].Data, 2)

		light := batches[0].Data[0]
		assert.Equal(t, constants.EventTypeLight, light.Type)
		assert.Equal(t, "/lights/3", light.IDv1)
		require.NotNil(t, light.On)
		assert.True(t, light.On.On)
		require.NotNil(t, light.Dimming)
		assert.Equal(t, 42.5, light.Dimming.Brightness)
		assert.Nil(t, light.ColorTemperature)

		assert.Equal(t, constants.EventStatusConnectivityIssue, batches[0].Data[1].Status)
	})

	t.Run("should reject invalid data", func(t *testing.T) {
		_, err := events.Decode([]byte(`hi`))
		assert.Error(t, err)
	})
}

func Test_StreamURL(t *testing.T) {
	assert.Equal(t, "https://192.168.1.2/eventstream/clip/v2", events.StreamURL("192.168.1.2"))
	assert.Equal(t, "http://localhost:8080/eventstream/clip/v2", events.StreamURL("http://localhost:8080/"))
}

func Test_Subscribe(t *testing.T) {
	// arrange
	server := sse.New()
	server.CreateStream("messages")
	// published before subscribing, delivered by replay
	server.Publish("messages", &sse.Event{Data: []byte(lightUpdate)})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "newdeveloper", r.Header.Get("hue-application-key"))
		server.ServeHTTP(w, r)
	}))
	defer ts.Close()
	defer server.Close()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	consumer := events.NewEventConsumer(logger, ts.URL+"?stream=messages", "newdeveloper")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	received := make(chan events.Event, 1)
	done := make(chan error, 1)

	// act
	go func() {
		done <- consumer.Subscribe(ctx, func(e events.Event) {
			select {
			case received <- e:
			default:
			}
		})
	}()

	// assert
	select {
	case e := <-received:
		assert.Equal(t, "9f8e2c6e-1c43-4f3a-9d9b-4b8f0f6c2a11", e.ID)
		assert.Len(t, e.Data, 2)
	case <-ctx.Done():
		t.Fatal("no event received")
	}

	cancel()
	assert.NoError(t, <-done)
}
