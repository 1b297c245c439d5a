package moderation

import (
	"strings"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
)

// AllowList is the ordered set of risk levels that are accepted as is.
// An empty list is valid and allows nothing explicitly.
type AllowList struct {
	levels []domain.RiskLevel
}

// ParseAllowList reads a comma separated list such as "low,none".
func ParseAllowList(csv string) AllowList {
	return NewAllowList(strings.Split(csv, ",")...)
}

func NewAllowList(levels ...string) AllowList {
	list := AllowList{}
	for _, raw := range levels {
		level := domain.ParseRiskLevel(raw)
		if !level.Known() {
			continue
		}
		list.levels = append(list.levels, level)
	}
	return list
}

func (a AllowList) Contains(level domain.RiskLevel) bool {
	level = domain.ParseRiskLevel(string(level))
	for _, allowed := range a.levels {
		if allowed == level {
			return true
		}
	}
	return false
}

func (a AllowList) Levels() []string {
	out := make([]string, len(a.levels))
	for i, level := range a.levels {
		out[i] = string(level)
	}
	return out
}

func (a AllowList) String() string {
	return strings.Join(a.Levels(), ",")
}

// Decide reports whether content classified at level is approved.
// An unknown level is approved only when the list tolerates neither
// medium nor high risk.
func (a AllowList) Decide(level domain.RiskLevel) bool {
	level = domain.ParseRiskLevel(string(level))
	if level.Known() {
		return a.Contains(level)
	}
	return !a.Contains(domain.RiskLevelMedium) && !a.Contains(domain.RiskLevelHigh)
}
