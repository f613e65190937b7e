package events

import (
	"encoding/json"
	"time"
)

// Event is one batch received from the bridge event stream.
type Event struct {
	ID           string      `json:"id"`
	CreationTime time.Time   `json:"creationtime"`
	Data         []EventData `json:"data"`
	Type         string      `json:"type"`
}

// EventData is a change to one bridge resource. Only the fields that changed
// are set.
type EventData struct {
	ID    string `json:"id"`
	IDv1  string `json:"id_v1,omitempty"`
	Owner *struct {
		RID   string `json:"rid"`
		RType string `json:"rtype"`
	} `json:"owner,omitempty"`
	On *struct {
		On bool `json:"on"`
	} `json:"on,omitempty"`
	Dimming *struct {
		Brightness float64 `json:"brightness"`
	} `json:"dimming,omitempty"`
	ColorTemperature *struct {
		Mirek *int `json:"mirek"`
	} `json:"color_temperature,omitempty"`
	Motion *struct {
		Motion bool `json:"motion"`
	} `json:"motion,omitempty"`
	Button *struct {
		LastEvent string `json:"last_event"`
	} `json:"button,omitempty"`
	Type   string `json:"type"`
	Status string `json:"status,omitempty"`
}

// Decode decodes the data of one stream message, a list of batches.
func Decode(data []byte) ([]Event, error) {
	var batches []Event
	if err := json.Unmarshal(data, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}
