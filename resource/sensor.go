package resource

import "github.com/wheelibin/huelib/modifier"

// Sensor is a physical or virtual (CLIP) sensor. State fields that the
// sensor type does not report are nil.
type Sensor struct {
	ID               string         `json:"-"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	ModelID          string         `json:"modelid"`
	UniqueID         string         `json:"uniqueid,omitempty"`
	ManufacturerName string         `json:"manufacturername"`
	SoftwareVersion  string         `json:"swversion"`
	SoftwareUpdate   SoftwareUpdate `json:"swupdate"`
	Recycle          bool           `json:"recycle"`
	State            SensorState    `json:"state"`
	Config           SensorConfig   `json:"config"`
}

func (s *Sensor) SetID(id string) { s.ID = id }

type SensorState struct {
	Presence    *bool  `json:"presence,omitempty"`
	Flag        *bool  `json:"flag,omitempty"`
	Status      *int   `json:"status,omitempty"`
	ButtonEvent *int   `json:"buttonevent,omitempty"`
	Temperature *int   `json:"temperature,omitempty"`
	LightLevel  *int   `json:"lightlevel,omitempty"`
	Dark        *bool  `json:"dark,omitempty"`
	Daylight    *bool  `json:"daylight,omitempty"`
	LastUpdated string `json:"lastupdated,omitempty"`
	Humidity    *int   `json:"humidity,omitempty"`
	Open        *bool  `json:"open,omitempty"`
	Water       *bool  `json:"water,omitempty"`
	Pressure    *int   `json:"pressure,omitempty"`
}

type SensorConfig struct {
	On        bool   `json:"on"`
	Reachable *bool  `json:"reachable,omitempty"`
	Battery   *uint8 `json:"battery,omitempty"`
	URL       string `json:"url,omitempty"`
}

var sensorAttributeFields = modifier.Table{
	"name": {},
}

// Only CLIP sensors accept state changes.
var sensorStateFields = modifier.Table{
	"presence": {},
	"flag":     {},
	"status":   {},
}

var sensorConfigFields = modifier.Table{
	"on":        {},
	"reachable": {},
	"battery":   {},
	"url":       {},
}

type SensorAttributeModifier struct {
	*modifier.Modifier
}

func NewSensorAttributeModifier() *SensorAttributeModifier {
	return &SensorAttributeModifier{modifier.New(sensorAttributeFields)}
}

func (m *SensorAttributeModifier) Name(name string) *SensorAttributeModifier {
	m.Override("name", name)
	return m
}

type SensorStateModifier struct {
	*modifier.Modifier
}

func NewSensorStateModifier() *SensorStateModifier {
	return &SensorStateModifier{modifier.New(sensorStateFields)}
}

func (m *SensorStateModifier) Presence(presence bool) *SensorStateModifier {
	m.Override("presence", presence)
	return m
}

func (m *SensorStateModifier) Flag(flag bool) *SensorStateModifier {
	m.Override("flag", flag)
	return m
}

func (m *SensorStateModifier) Status(status int) *SensorStateModifier {
	m.Override("status", status)
	return m
}

type SensorConfigModifier struct {
	*modifier.Modifier
}

func NewSensorConfigModifier() *SensorConfigModifier {
	return &SensorConfigModifier{modifier.New(sensorConfigFields)}
}

func (m *SensorConfigModifier) On(on bool) *SensorConfigModifier {
	m.Override("on", on)
	return m
}

func (m *SensorConfigModifier) Reachable(reachable bool) *SensorConfigModifier {
	m.Override("reachable", reachable)
	return m
}

// Battery sets the battery level (0-100) of a CLIP sensor.
func (m *SensorConfigModifier) Battery(level uint8) *SensorConfigModifier {
	m.Override("battery", level)
	return m
}

func (m *SensorConfigModifier) URL(url string) *SensorConfigModifier {
	m.Override("url", url)
	return m
}
