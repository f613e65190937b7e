package resource

import "github.com/wheelibin/huelib/modifier"

type ScheduleStatus string

const (
	ScheduleStatusEnabled  ScheduleStatus = "enabled"
	ScheduleStatusDisabled ScheduleStatus = "disabled"
)

// Schedule triggers an action at a given time.
type Schedule struct {
	ID          string         `json:"-"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Command     Action         `json:"command"`
	LocalTime   string         `json:"localtime"`
	StartTime   string         `json:"starttime,omitempty"`
	Created     string         `json:"created"`
	Status      ScheduleStatus `json:"status"`
	AutoDelete  bool           `json:"autodelete"`
	Recycle     bool           `json:"recycle"`
}

func (s *Schedule) SetID(id string) { s.ID = id }

// ScheduleCreator is the body of a schedule creation request. LocalTime uses
// the bridge's time patterns, e.g. "2024-06-01T21:30:00" or "W124/T07:00:00".
type ScheduleCreator struct {
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Command     Action         `json:"command"`
	LocalTime   string         `json:"localtime"`
	Status      ScheduleStatus `json:"status,omitempty"`
	AutoDelete  *bool          `json:"autodelete,omitempty"`
	Recycle     *bool          `json:"recycle,omitempty"`
}

var scheduleFields = modifier.Table{
	"name":        {},
	"description": {},
	"command":     {},
	"localtime":   {},
	"status":      {},
	"autodelete":  {},
}

// ScheduleModifier changes a schedule.
type ScheduleModifier struct {
	*modifier.Modifier
}

func NewScheduleModifier() *ScheduleModifier {
	return &ScheduleModifier{modifier.New(scheduleFields)}
}

func (m *ScheduleModifier) Name(name string) *ScheduleModifier {
	m.Override("name", name)
	return m
}

func (m *ScheduleModifier) Description(description string) *ScheduleModifier {
	m.Override("description", description)
	return m
}

func (m *ScheduleModifier) Command(command Action) *ScheduleModifier {
	m.Override("command", command)
	return m
}

func (m *ScheduleModifier) LocalTime(localTime string) *ScheduleModifier {
	m.Override("localtime", localTime)
	return m
}

func (m *ScheduleModifier) Status(status ScheduleStatus) *ScheduleModifier {
	m.Override("status", status)
	return m
}

func (m *ScheduleModifier) AutoDelete(autoDelete bool) *ScheduleModifier {
	m.Override("autodelete", autoDelete)
	return m
}
