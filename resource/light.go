package resource

import "github.com/wheelibin/huelib/modifier"

// Light is a light connected to the bridge.
type Light struct {
	ID               string         `json:"-"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	State            LightState     `json:"state"`
	ModelID          string         `json:"modelid"`
	UniqueID         string         `json:"uniqueid"`
	ProductID        string         `json:"productid,omitempty"`
	ProductName      string         `json:"productname,omitempty"`
	ManufacturerName string         `json:"manufacturername"`
	SoftwareVersion  string         `json:"swversion"`
	SoftwareUpdate   SoftwareUpdate `json:"swupdate"`
	Capabilities     struct {
		Certified bool `json:"certified"`
		Control   struct {
			MinDimLevel    int          `json:"mindimlevel"`
			MaxLumen       int          `json:"maxlumen"`
			ColorGamutType string       `json:"colorgamuttype,omitempty"`
			ColorGamut     [][2]float64 `json:"colorgamut,omitempty"`
			CT             *struct {
				Min int `json:"min"`
				Max int `json:"max"`
			} `json:"ct,omitempty"`
		} `json:"control"`
	} `json:"capabilities"`
	Config struct {
		Archetype string `json:"archetype"`
		Function  string `json:"function"`
		Direction string `json:"direction"`
	} `json:"config"`
}

// LightState is the current state of a light. Fields a light does not
// support are nil.
type LightState struct {
	On           bool        `json:"on"`
	Brightness   *uint8      `json:"bri,omitempty"`
	Hue          *uint16     `json:"hue,omitempty"`
	Saturation   *uint8      `json:"sat,omitempty"`
	ColorSpaceXY *[2]float64 `json:"xy,omitempty"`
	ColorTemp    *uint16     `json:"ct,omitempty"`
	Alert        Alert       `json:"alert,omitempty"`
	Effect       Effect      `json:"effect,omitempty"`
	ColorMode    ColorMode   `json:"colormode,omitempty"`
	Mode         string      `json:"mode,omitempty"`
	Reachable    bool        `json:"reachable"`
}

func (l *Light) SetID(id string) { l.ID = id }

// lightStateFields is the wire vocabulary of light and group state updates.
// The bridge clamps bri, sat and ct to the light's range and wraps hue.
var lightStateFields = modifier.Table{
	"on":             {},
	"bri":            {Delta: "bri_inc"},
	"hue":            {Delta: "hue_inc"},
	"sat":            {Delta: "sat_inc"},
	"xy":             {Delta: "xy_inc", Pair: true},
	"ct":             {Delta: "ct_inc"},
	"alert":          {},
	"effect":         {},
	"transitiontime": {},
}

var lightAttributeFields = modifier.Table{
	"name": {},
}

// LightAttributeModifier renames a light.
type LightAttributeModifier struct {
	*modifier.Modifier
}

func NewLightAttributeModifier() *LightAttributeModifier {
	return &LightAttributeModifier{modifier.New(lightAttributeFields)}
}

func (m *LightAttributeModifier) Name(name string) *LightAttributeModifier {
	m.Override("name", name)
	return m
}

// LightStateModifier changes the state of a light.
type LightStateModifier struct {
	*modifier.Modifier
}

func NewLightStateModifier() *LightStateModifier {
	return &LightStateModifier{modifier.New(lightStateFields)}
}

func (m *LightStateModifier) On(on bool) *LightStateModifier {
	m.Override("on", on)
	return m
}

// Brightness sets (1-254) or shifts (-254 to 254) the brightness.
func (m *LightStateModifier) Brightness(t modifier.Type, value uint8) *LightStateModifier {
	m.Set("bri", t, int(value))
	return m
}

// Hue sets or shifts the hue (0-65535, wrapping).
func (m *LightStateModifier) Hue(t modifier.Type, value uint16) *LightStateModifier {
	m.Set("hue", t, int(value))
	return m
}

func (m *LightStateModifier) Saturation(t modifier.Type, value uint8) *LightStateModifier {
	m.Set("sat", t, int(value))
	return m
}

// ColorSpaceCoordinates sets or shifts the CIE x and y coordinates together.
func (m *LightStateModifier) ColorSpaceCoordinates(t modifier.CoordinateType, x, y float64) *LightStateModifier {
	m.SetCoordinates("xy", t, x, y)
	return m
}

// ColorTemperature sets or shifts the color temperature in mired (153-500).
func (m *LightStateModifier) ColorTemperature(t modifier.Type, value uint16) *LightStateModifier {
	m.Set("ct", t, int(value))
	return m
}

func (m *LightStateModifier) Alert(alert Alert) *LightStateModifier {
	m.Override("alert", alert)
	return m
}

func (m *LightStateModifier) Effect(effect Effect) *LightStateModifier {
	m.Override("effect", effect)
	return m
}

// TransitionTime sets the duration of the transition in multiples of 100ms.
func (m *LightStateModifier) TransitionTime(value uint16) *LightStateModifier {
	m.Override("transitiontime", value)
	return m
}
