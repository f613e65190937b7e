package resource

import (
	"slices"

	"github.com/wheelibin/huelib/modifier"
)

type SceneType string

const (
	SceneTypeLightScene SceneType = "LightScene"
	SceneTypeGroupScene SceneType = "GroupScene"
)

// Scene is a stored set of light states.
type Scene struct {
	ID          string    `json:"-"`
	Name        string    `json:"name"`
	Type        SceneType `json:"type"`
	Group       string    `json:"group,omitempty"`
	Lights      []string  `json:"lights"`
	Owner       string    `json:"owner"`
	Recycle     bool      `json:"recycle"`
	Locked      bool      `json:"locked"`
	Picture     string    `json:"picture,omitempty"`
	LastUpdated string    `json:"lastupdated,omitempty"`
	Version     int       `json:"version"`
	AppData     struct {
		Version int    `json:"version,omitempty"`
		Data    string `json:"data,omitempty"`
	} `json:"appdata"`
	// LightStates is only returned when a single scene is requested.
	LightStates map[string]LightState `json:"lightstates,omitempty"`
}

func (s *Scene) SetID(id string) { s.ID = id }

// SceneCreator is the body of a scene creation request.
type SceneCreator struct {
	Name        string                         `json:"name"`
	Lights      []string                       `json:"lights,omitempty"`
	Type        SceneType                      `json:"type,omitempty"`
	Group       string                         `json:"group,omitempty"`
	Recycle     *bool                          `json:"recycle,omitempty"`
	Picture     string                         `json:"picture,omitempty"`
	LightStates map[string]*LightStateModifier `json:"lightstates,omitempty"`
}

var sceneFields = modifier.Table{
	"name":            {},
	"lights":          {},
	"storelightstate": {},
	"lightstates":     {},
}

// SceneModifier changes a scene's attributes and stored light states.
type SceneModifier struct {
	*modifier.Modifier
	lightStates map[string]*LightStateModifier
}

func NewSceneModifier() *SceneModifier {
	return &SceneModifier{Modifier: modifier.New(sceneFields)}
}

func (m *SceneModifier) Name(name string) *SceneModifier {
	m.Override("name", name)
	return m
}

func (m *SceneModifier) Lights(ids []string) *SceneModifier {
	m.Override("lights", slices.Clone(ids))
	return m
}

// StoreLightState makes the bridge save the lights' current states into the scene.
func (m *SceneModifier) StoreLightState(store bool) *SceneModifier {
	m.Override("storelightstate", store)
	return m
}

// LightState sets the state stored for one light of the scene. Calling it
// again for the same light replaces the previous state.
func (m *SceneModifier) LightState(lightID string, state *LightStateModifier) *SceneModifier {
	if m.lightStates == nil {
		m.lightStates = map[string]*LightStateModifier{}
	}
	m.lightStates[lightID] = state
	m.Override("lightstates", m.lightStates)
	return m
}
