package moderation

import "strings"

// RiskLevel is the lowercase risk token returned by the classification service.
// The zero value means the service did not report a level.
type RiskLevel string

const (
	RiskLevelUnknown RiskLevel = ""
	RiskLevelNone    RiskLevel = "none"
	RiskLevelLow     RiskLevel = "low"
	RiskLevelMedium  RiskLevel = "medium"
	RiskLevelHigh    RiskLevel = "high"
)

func ParseRiskLevel(raw string) RiskLevel {
	return RiskLevel(strings.ToLower(strings.TrimSpace(raw)))
}

func (r RiskLevel) Known() bool {
	return r != RiskLevelUnknown
}

func (r RiskLevel) String() string {
	if !r.Known() {
		return "unknown"
	}
	return string(r)
}
