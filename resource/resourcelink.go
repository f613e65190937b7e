package resource

import (
	"slices"

	"github.com/wheelibin/huelib/modifier"
)

// Resourcelink groups bridge resources that belong to one feature, such as
// the sensors, rules and schedules of a wake up routine. Links are resource
// paths like "/sensors/2".
type Resourcelink struct {
	ID          string   `json:"-"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	ClassID     uint16   `json:"classid"`
	Owner       string   `json:"owner"`
	Recycle     bool     `json:"recycle"`
	Links       []string `json:"links"`
}

func (r *Resourcelink) SetID(id string) { r.ID = id }

// ResourcelinkCreator is the body of a resourcelink creation request.
type ResourcelinkCreator struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ClassID     uint16   `json:"classid"`
	Recycle     *bool    `json:"recycle,omitempty"`
	Links       []string `json:"links"`
}

var resourcelinkFields = modifier.Table{
	"name":        {},
	"description": {},
	"classid":     {},
	"links":       {},
}

type ResourcelinkModifier struct {
	*modifier.Modifier
}

func NewResourcelinkModifier() *ResourcelinkModifier {
	return &ResourcelinkModifier{modifier.New(resourcelinkFields)}
}

func (m *ResourcelinkModifier) Name(name string) *ResourcelinkModifier {
	m.Override("name", name)
	return m
}

func (m *ResourcelinkModifier) Description(description string) *ResourcelinkModifier {
	m.Override("description", description)
	return m
}

func (m *ResourcelinkModifier) ClassID(classID uint16) *ResourcelinkModifier {
	m.Override("classid", classID)
	return m
}

// Links replaces the links of the resourcelink.
func (m *ResourcelinkModifier) Links(links []string) *ResourcelinkModifier {
	m.Override("links", slices.Clone(links))
	return m
}
