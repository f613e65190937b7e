// Package resource holds the bridge's resource schemas together with the
// modifiers and creators used to change them.
package resource

import "encoding/json"

// TimeFormat is the layout of timestamps reported by the bridge (local time,
// no zone).
const TimeFormat = "2006-01-02T15:04:05"

type Alert string

const (
	// AlertSelect performs one breathe cycle.
	AlertSelect Alert = "select"
	// AlertLSelect performs breathe cycles for 15 seconds or until cancelled.
	AlertLSelect Alert = "lselect"
	AlertNone    Alert = "none"
)

type Effect string

const (
	// EffectColorloop cycles through all hues at the current brightness and saturation.
	EffectColorloop Effect = "colorloop"
	EffectNone      Effect = "none"
)

type ColorMode string

const (
	ColorModeColorTemperature ColorMode = "ct"
	ColorModeHueSaturation    ColorMode = "hs"
	ColorModeXY               ColorMode = "xy"
)

// ActionMethod is the HTTP method a schedule or rule action uses.
type ActionMethod string

const (
	ActionMethodPut    ActionMethod = "PUT"
	ActionMethodPost   ActionMethod = "POST"
	ActionMethodDelete ActionMethod = "DELETE"
)

// Action is a request the bridge issues on behalf of a schedule or rule.
type Action struct {
	Address string                     `json:"address"`
	Method  ActionMethod               `json:"method"`
	Body    map[string]json.RawMessage `json:"body"`
}

// NewAction builds an action whose body is the serialized form of body
// (typically one of the modifiers in this package).
func NewAction(address string, method ActionMethod, body any) (Action, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return Action{}, err
	}
	a := Action{Address: address, Method: method, Body: map[string]json.RawMessage{}}
	if err := json.Unmarshal(data, &a.Body); err != nil {
		return Action{}, err
	}
	return a, nil
}

// SoftwareUpdate is the update status of a light or sensor.
type SoftwareUpdate struct {
	State       string `json:"state"`
	LastInstall string `json:"lastinstall"`
}
