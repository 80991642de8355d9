package domain

import (
	"fmt"
	"strings"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ParseRiskLevel is lenient: anything that is not MEDIUM or HIGH reads as LOW.
func ParseRiskLevel(s string) RiskLevel {
	switch r := RiskLevel(strings.ToUpper(strings.TrimSpace(s))); r {
	case RiskMedium, RiskHigh:
		return r
	}
	return RiskLow
}

// Status is the workflow state of a briefing.
type Status string

const (
	StatusNew      Status = "NEW"
	StatusAssigned Status = "ASSIGNED"
	StatusDone     Status = "DONE"
)

// ParseStatus accepts any casing and rejects values outside NEW, ASSIGNED and DONE.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusNew, StatusAssigned, StatusDone:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// RiskStance, NotificationChannel and SummaryCadence are the external values
// accepted from onboarding. Storage uses the upper-case codes below.
type (
	RiskStance          string
	NotificationChannel string
	SummaryCadence      string
)

const (
	StanceConservative RiskStance = "conservative"
	StanceBalanced     RiskStance = "balanced"
	StanceAggressive   RiskStance = "aggressive"

	ChannelGmail NotificationChannel = "gmail"
	ChannelSlack NotificationChannel = "slack"
	ChannelTeams NotificationChannel = "teams"

	CadenceWeekly   SummaryCadence = "weekly"
	CadenceBiweekly SummaryCadence = "biweekly"
	CadenceMonthly  SummaryCadence = "monthly"
)

// EnumTable is a fixed bidirectional mapping between external literals and
// storage codes.
type EnumTable[E ~string] struct {
	name     string
	fallback E
	forward  map[E]string
	inverse  map[string]E
}

// NewEnumTable panics unless forward is a bijection containing fallback.
func NewEnumTable[E ~string](name string, fallback E, forward map[E]string) *EnumTable[E] {
	inverse := make(map[string]E, len(forward))
	for k, v := range forward {
		if prev, dup := inverse[v]; dup {
			panic(fmt.Sprintf("%s: storage code %q mapped from both %q and %q", name, v, prev, k))
		}
		inverse[v] = k
	}
	if _, ok := forward[fallback]; !ok {
		panic(fmt.Sprintf("%s: fallback %q is not a known value", name, fallback))
	}
	return &EnumTable[E]{name: name, fallback: fallback, forward: forward, inverse: inverse}
}

// Code returns the storage code for an external value.
func (t *EnumTable[E]) Code(v E) (string, bool) {
	c, ok := t.forward[v]
	return c, ok
}

// Decode maps a stored code back, degrading unknown codes to the fallback.
func (t *EnumTable[E]) Decode(code string) E {
	if v, ok := t.inverse[code]; ok {
		return v
	}
	return t.fallback
}

// Valid reports whether v is a known external value.
func (t *EnumTable[E]) Valid(v E) bool {
	_, ok := t.forward[v]
	return ok
}

// Values returns the known external values.
func (t *EnumTable[E]) Values() []E {
	out := make([]E, 0, len(t.forward))
	for k := range t.forward {
		out = append(out, k)
	}
	return out
}

var (
	RiskStances = NewEnumTable("risk stance", StanceBalanced, map[RiskStance]string{
		StanceConservative: "CONSERVATIVE",
		StanceBalanced:     "BALANCED",
		StanceAggressive:   "AGGRESSIVE",
	})
	NotificationChannels = NewEnumTable("notification channel", ChannelGmail, map[NotificationChannel]string{
		ChannelGmail: "EMAIL",
		ChannelSlack: "SLACK",
		ChannelTeams: "TEAMS",
	})
	SummaryCadences = NewEnumTable("summary cadence", CadenceWeekly, map[SummaryCadence]string{
		CadenceWeekly:   "WEEKLY",
		CadenceBiweekly: "BIWEEKLY",
		CadenceMonthly:  "MONTHLY",
	})
)
