package bridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/bridge"
	"github.com/wheelibin/huelib/mocks"
	"github.com/wheelibin/huelib/modifier"
	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

const apiURL = "http://192.168.1.2/api/newdeveloper"

func newTestBridge(t *testing.T) (*bridge.Bridge, *mocks.MockTransport) {
	transport := mocks.NewMockTransport(t)
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return bridge.NewWithTransport("192.168.1.2", "newdeveloper", logger, transport), transport
}

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func Test_GetLight(t *testing.T) {

	t.Run("should decode the light and set its id", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "GET", apiURL+"/lights/1", nil).
			Return(raw(`{"name":"Hue Lamp 1","type":"Extended color light","state":{"on":true,"bri":144,"reachable":true}}`), nil)

		// act
		light, err := b.GetLight(context.Background(), "1")

		// assert
		require.NoError(t, err)
		assert.Equal(t, "1", light.ID)
		assert.Equal(t, "Hue Lamp 1", light.Name)
		assert.True(t, light.State.On)
	})

	t.Run("should return the bridge failure", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "GET", apiURL+"/lights/9", nil).
			Return(raw(`[{"error":{"type":3,"address":"/lights/9","description":"resource, /lights/9, not available"}}]`), nil)

		// act
		_, err := b.GetLight(context.Background(), "9")

		// assert
		var failure *response.Failure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, response.ErrorTypeResourceNotAvailable, failure.Type)
		assert.Equal(t, "/lights/9", failure.Address)
	})

	t.Run("should return transport errors", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transportErr := &bridge.TransportError{Method: "GET", URL: apiURL + "/lights/1", StatusCode: 503}
		transport.On("Send", mock.Anything, "GET", apiURL+"/lights/1", nil).Return(nil, transportErr)

		// act
		_, err := b.GetLight(context.Background(), "1")

		// assert
		var target *bridge.TransportError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, 503, target.StatusCode)
	})
}

func Test_GetAllLights(t *testing.T) {

	t.Run("should return lights sorted by id", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "GET", apiURL+"/lights", nil).
			Return(raw(`{"10":{"name":"Porch"},"2":{"name":"Desk"},"1":{"name":"Hall"}}`), nil)

		// act
		lights, err := b.GetAllLights(context.Background())

		// assert
		require.NoError(t, err)
		require.Len(t, lights, 3)
		assert.Equal(t, []string{"1", "2", "10"}, []string{lights[0].ID, lights[1].ID, lights[2].ID})
		assert.Equal(t, "Porch", lights[2].Name)
	})

	t.Run("should return an empty list when there are no lights", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "GET", apiURL+"/lights", nil).Return(raw(`{}`), nil)

		// act
		lights, err := b.GetAllLights(context.Background())

		// assert
		require.NoError(t, err)
		assert.Empty(t, lights)
	})

	t.Run("should return unauthorized user failures", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "GET", apiURL+"/lights", nil).
			Return(raw(`[{"error":{"type":1,"address":"/lights","description":"unauthorized user"}}]`), nil)

		// act
		_, err := b.GetAllLights(context.Background())

		// assert
		var failure *response.Failure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, response.ErrorTypeUnauthorizedUser, failure.Type)
	})
}

func Test_SetLightState(t *testing.T) {

	t.Run("should send the compiled body and decode the outcomes", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		var sent json.RawMessage
		transport.On("Send", mock.Anything, "PUT", apiURL+"/lights/1/state", mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(3).(json.RawMessage) }).
			Return(raw(`[{"success":{"/lights/1/state/on":true}},{"success":{"/lights/1/state/bri":200}}]`), nil)
		m := resource.NewLightStateModifier().On(true).Brightness(modifier.Override, 200)

		// act
		responses, err := b.SetLightState(context.Background(), "1", m)

		// assert
		require.NoError(t, err)
		assert.JSONEq(t, `{"on":true,"bri":200}`, string(sent))
		assert.NoError(t, responses.IntoResult())
		assert.Len(t, responses.Successes(), 2)
	})

	t.Run("should not call the bridge for an empty modifier", func(t *testing.T) {
		// arrange
		b, _ := newTestBridge(t)

		// act
		responses, err := b.SetLightState(context.Background(), "1", resource.NewLightStateModifier())

		// assert
		assert.NoError(t, err)
		assert.Nil(t, responses)
	})

	t.Run("should return the modifier error without calling the bridge", func(t *testing.T) {
		// arrange
		b, _ := newTestBridge(t)
		m := resource.NewLightStateModifier().On(true)
		m.Set("xy", modifier.Increment, 1)

		// act
		_, err := b.SetLightState(context.Background(), "1", m)

		// assert
		assert.True(t, errors.Is(err, modifier.ErrUnsupportedOperation))
	})
}

func Test_SetGroupState(t *testing.T) {

	t.Run("first failure wins over successes", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "PUT", apiURL+"/groups/0/action", mock.Anything).
			Return(raw(`[
				{"success":{"/groups/0/action/on":true}},
				{"error":{"type":201,"address":"/groups/0/action/bri","description":"parameter, bri, is not modifiable. Device is set to off."}},
				{"error":{"type":7,"address":"/groups/0/action/ct","description":"invalid value"}}
			]`), nil)
		m := resource.NewGroupStateModifier().On(true).Brightness(modifier.Increment, 10).ColorTemperature(modifier.Override, 9000)

		// act
		responses, err := b.SetGroupState(context.Background(), "0", m)

		// assert
		require.NoError(t, err)
		var failure *response.Failure
		require.True(t, errors.As(responses.IntoResult(), &failure))
		assert.Equal(t, response.ErrorTypeDeviceOff, failure.Type)
		assert.Len(t, responses.Failures(), 2)
	})
}

func Test_CreateGroup(t *testing.T) {
	creator := resource.GroupCreator{Name: "Living room", Lights: []string{"1", "2"}, Type: resource.GroupTypeRoom}

	t.Run("should return the new id", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "POST", apiURL+"/groups", creator).
			Return(raw(`[{"success":{"id":"7"}}]`), nil)

		// act
		id, err := b.CreateGroup(context.Background(), creator)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "7", id)
	})

	t.Run("should fail when the bridge returns no id", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "POST", apiURL+"/groups", creator).
			Return(raw(`[{"success":{"name":"Living room"}}]`), nil)

		// act
		_, err := b.CreateGroup(context.Background(), creator)

		// assert
		assert.True(t, errors.Is(err, bridge.ErrMissingID))
	})

	t.Run("should return the bridge failure", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "POST", apiURL+"/groups", creator).
			Return(raw(`[{"error":{"type":301,"address":"/groups","description":"group could not be created. Group table is full."}}]`), nil)

		// act
		_, err := b.CreateGroup(context.Background(), creator)

		// assert
		var failure *response.Failure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, response.ErrorTypeGroupTableFull, failure.Type)
	})
}

func Test_DeleteScene(t *testing.T) {

	t.Run("should accept a bare success message", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "DELETE", apiURL+"/scenes/AB34EF5", nil).
			Return(raw(`[{"success":"/scenes/AB34EF5 deleted"}]`), nil)

		// act
		err := b.DeleteScene(context.Background(), "AB34EF5")

		// assert
		assert.NoError(t, err)
	})

	t.Run("should return the bridge failure", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "DELETE", apiURL+"/scenes/nope", nil).
			Return(raw(`[{"error":{"type":3,"address":"/scenes/nope","description":"resource, /scenes/nope, not available"}}]`), nil)

		// act
		err := b.DeleteScene(context.Background(), "nope")

		// assert
		var failure *response.Failure
		assert.True(t, errors.As(err, &failure))
	})
}

func Test_SearchNewLights(t *testing.T) {

	t.Run("should search for specific serials", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		body := map[string][]string{"deviceid": {"45AF34", "543636"}}
		transport.On("Send", mock.Anything, "POST", apiURL+"/lights", body).
			Return(raw(`[{"success":{"/lights":"Searching for new devices"}}]`), nil)

		// act
		err := b.SearchNewLights(context.Background(), "45AF34", "543636")

		// assert
		assert.NoError(t, err)
	})

	t.Run("should read the scan result", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		transport.On("Send", mock.Anything, "GET", apiURL+"/lights/new", nil).
			Return(raw(`{"7":{"name":"Hue Lamp 7"},"lastscan":"active"}`), nil)

		// act
		scan, err := b.GetNewLights(context.Background())

		// assert
		require.NoError(t, err)
		assert.Equal(t, resource.LastScanActive, scan.LastScan.Kind)
		assert.Equal(t, []resource.ScanResource{{ID: "7", Name: "Hue Lamp 7"}}, scan.Resources)
	})
}

func Test_GetNewSensors(t *testing.T) {
	// arrange
	b, transport := newTestBridge(t)
	transport.On("Send", mock.Anything, "GET", apiURL+"/sensors/new", nil).
		Return(raw(`{"5":{"name":"Hue motion sensor 1"}}`), nil)

	// act
	_, err := b.GetNewSensors(context.Background())

	// assert
	var parseErr *response.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func Test_SetScene(t *testing.T) {

	t.Run("should nest light states", func(t *testing.T) {
		// arrange
		b, transport := newTestBridge(t)
		var sent json.RawMessage
		transport.On("Send", mock.Anything, "PUT", apiURL+"/scenes/AB34EF5", mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(3).(json.RawMessage) }).
			Return(raw(`[{"success":{"/scenes/AB34EF5/lightstates":{"1":{"on":true}}}}]`), nil)
		m := resource.NewSceneModifier().LightState("1", resource.NewLightStateModifier().On(true))

		// act
		_, err := b.SetScene(context.Background(), "AB34EF5", m)

		// assert
		require.NoError(t, err)
		assert.JSONEq(t, `{"lightstates":{"1":{"on":true}}}`, string(sent))
	})

	t.Run("should reject an invalid nested state before sending", func(t *testing.T) {
		// arrange
		b, _ := newTestBridge(t)
		state := resource.NewLightStateModifier()
		state.Override("xy", 0.4)
		m := resource.NewSceneModifier().LightState("1", state)

		// act
		_, err := b.SetScene(context.Background(), "AB34EF5", m)

		// assert
		assert.True(t, errors.Is(err, modifier.ErrUnsupportedOperation))
	})
}

func Test_GetAllSensors(t *testing.T) {
	// arrange
	b, transport := newTestBridge(t)
	transport.On("Send", mock.Anything, "GET", apiURL+"/sensors", nil).
		Return(raw(`{
			"1":{"name":"Daylight","type":"Daylight","state":{"daylight":false,"lastupdated":"2014-06-27T07:38:51"},"config":{"on":true}},
			"2":{"name":"Hall motion","type":"ZLLPresence","state":{"presence":true},"config":{"on":true,"battery":90}}
		}`), nil)

	// act
	sensors, err := b.GetAllSensors(context.Background())

	// assert
	require.NoError(t, err)
	require.Len(t, sensors, 2)
	require.NotNil(t, sensors[1].State.Presence)
	assert.True(t, *sensors[1].State.Presence)
	require.NotNil(t, sensors[1].Config.Battery)
	assert.Equal(t, uint8(90), *sensors[1].Config.Battery)
}

func Test_CreateRule(t *testing.T) {
	// arrange
	b, transport := newTestBridge(t)
	action, err := resource.NewAction("/groups/0/action", resource.ActionMethodPut, resource.NewGroupStateModifier().On(false))
	require.NoError(t, err)
	creator := resource.RuleCreator{
		Name:       "Lights off when away",
		Conditions: []resource.Condition{{Address: "/sensors/2/state/presence", Operator: resource.ConditionOperatorEquals, Value: "false"}},
		Actions:    []resource.Action{action},
	}
	transport.On("Send", mock.Anything, "POST", apiURL+"/rules", creator).
		Return(raw(`[{"success":{"id":"3"}}]`), nil)

	// act
	id, err := b.CreateRule(context.Background(), creator)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "3", id)
}

func Test_CreateSchedule(t *testing.T) {
	// arrange
	b, transport := newTestBridge(t)
	action, err := resource.NewAction("/api/newdeveloper/groups/1/action", resource.ActionMethodPut, resource.NewGroupStateModifier().On(true))
	require.NoError(t, err)
	autoDelete := true
	creator := resource.ScheduleCreator{
		Name:       "Wake up",
		Command:    action,
		LocalTime:  "2024-06-01T07:00:00",
		AutoDelete: &autoDelete,
	}
	transport.On("Send", mock.Anything, "POST", apiURL+"/schedules", creator).
		Return(raw(`[{"success":{"id":"12"}}]`), nil)

	// act
	id, err := b.CreateSchedule(context.Background(), creator)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "12", id)
}

func Test_GetAllResourcelinks(t *testing.T) {
	// arrange
	b, transport := newTestBridge(t)
	transport.On("Send", mock.Anything, "GET", apiURL+"/resourcelinks", nil).
		Return(raw(`{
			"20":{"name":"Sunrise","classid":1,"links":["/schedules/12","/rules/3"]},
			"4":{"name":"Motion","classid":10020,"links":["/sensors/2"]}
		}`), nil)

	// act
	links, err := b.GetAllResourcelinks(context.Background())

	// assert
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "4", links[0].ID)
	assert.Equal(t, "Motion", links[0].Name)
	assert.Equal(t, "20", links[1].ID)
	assert.Equal(t, []string{"/schedules/12", "/rules/3"}, links[1].Links)
}

func Test_GetConfig(t *testing.T) {
	// arrange
	b, transport := newTestBridge(t)
	transport.On("Send", mock.Anything, "GET", apiURL+"/config", nil).
		Return(raw(`{"name":"Philips hue","bridgeid":"001788FFFE23BFC2","apiversion":"1.50.0",
			"whitelist":{"newdeveloper":{"name":"huectl#laptop","last use date":"2024-01-01T10:00:00","create date":"2023-12-01T10:00:00"}}}`), nil)

	// act
	config, err := b.GetConfig(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, "001788FFFE23BFC2", config.BridgeID)
	assert.Equal(t, "huectl#laptop", config.Whitelist["newdeveloper"].Name)
}
