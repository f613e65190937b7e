package resource

import (
	"slices"

	"github.com/wheelibin/huelib/modifier"
)

type RuleStatus string

const (
	RuleStatusEnabled         RuleStatus = "enabled"
	RuleStatusDisabled        RuleStatus = "disabled"
	RuleStatusResourceDeleted RuleStatus = "resourcedeleted"
)

type ConditionOperator string

const (
	ConditionOperatorEquals      ConditionOperator = "eq"
	ConditionOperatorGreaterThan ConditionOperator = "gt"
	ConditionOperatorLessThan    ConditionOperator = "lt"
	ConditionOperatorChanged     ConditionOperator = "dx"
	ConditionOperatorDelayed     ConditionOperator = "ddx"
	ConditionOperatorStable      ConditionOperator = "stable"
	ConditionOperatorNotStable   ConditionOperator = "not stable"
	ConditionOperatorIn          ConditionOperator = "in"
	ConditionOperatorNotIn       ConditionOperator = "not in"
)

// Condition is a test on a sensor or bridge attribute.
type Condition struct {
	Address  string            `json:"address"`
	Operator ConditionOperator `json:"operator"`
	Value    string            `json:"value,omitempty"`
}

// Rule runs its actions when all of its conditions hold.
type Rule struct {
	ID             string      `json:"-"`
	Name           string      `json:"name"`
	Owner          string      `json:"owner"`
	Created        string      `json:"created"`
	LastTriggered  string      `json:"lasttriggered"`
	TimesTriggered int         `json:"timestriggered"`
	Status         RuleStatus  `json:"status"`
	Recycle        bool        `json:"recycle"`
	Conditions     []Condition `json:"conditions"`
	Actions        []Action    `json:"actions"`
}

func (r *Rule) SetID(id string) { r.ID = id }

// RuleCreator is the body of a rule creation request.
type RuleCreator struct {
	Name       string      `json:"name,omitempty"`
	Status     RuleStatus  `json:"status,omitempty"`
	Recycle    *bool       `json:"recycle,omitempty"`
	Conditions []Condition `json:"conditions"`
	Actions    []Action    `json:"actions"`
}

var ruleFields = modifier.Table{
	"name":       {},
	"status":     {},
	"conditions": {},
	"actions":    {},
}

type RuleModifier struct {
	*modifier.Modifier
}

func NewRuleModifier() *RuleModifier {
	return &RuleModifier{modifier.New(ruleFields)}
}

func (m *RuleModifier) Name(name string) *RuleModifier {
	m.Override("name", name)
	return m
}

func (m *RuleModifier) Status(status RuleStatus) *RuleModifier {
	m.Override("status", status)
	return m
}

// Conditions replaces every condition of the rule.
func (m *RuleModifier) Conditions(conditions []Condition) *RuleModifier {
	m.Override("conditions", slices.Clone(conditions))
	return m
}

// Actions replaces every action of the rule.
func (m *RuleModifier) Actions(actions []Action) *RuleModifier {
	m.Override("actions", slices.Clone(actions))
	return m
}
