package moderation_test

import (
	"strings"
	"testing"

	"github.com/NeuralTrust/ImageGuard/pkg/app/moderation"
	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var knownLevels = []string{"none", "low", "medium", "high"}

func TestParseAllowList(t *testing.T) {
	list := moderation.ParseAllowList(" Low, none ,,HIGH")

	assert.Equal(t, []string{"low", "none", "high"}, list.Levels())
	assert.Equal(t, "low,none,high", list.String())
	assert.Empty(t, moderation.ParseAllowList("").Levels())
}

func TestAllowList_Contains_CaseInsensitive(t *testing.T) {
	list := moderation.ParseAllowList("low,none")

	assert.True(t, list.Contains("LOW"))
	assert.True(t, list.Contains(domain.RiskLevelNone))
	assert.False(t, list.Contains(domain.RiskLevelHigh))
	assert.False(t, list.Contains(domain.RiskLevelUnknown))
}

func TestAllowList_Decide(t *testing.T) {
	tests := []struct {
		name      string
		allowList string
		level     domain.RiskLevel
		want      bool
	}{
		{name: "known level in list", allowList: "low,none", level: domain.RiskLevelLow, want: true},
		{name: "known level in list mixed case", allowList: "Low,None", level: "NONE", want: true},
		{name: "known level not in list", allowList: "low,none", level: domain.RiskLevelHigh, want: false},
		{name: "medium not in list", allowList: "low,none", level: domain.RiskLevelMedium, want: false},
		{name: "empty list rejects known level", allowList: "", level: domain.RiskLevelNone, want: false},
		{name: "unknown with conservative list", allowList: "low,none", level: domain.RiskLevelUnknown, want: true},
		{name: "unknown with empty list", allowList: "", level: domain.RiskLevelUnknown, want: true},
		{name: "unknown with medium allowed", allowList: "low,medium", level: domain.RiskLevelUnknown, want: false},
		{name: "unknown with high allowed", allowList: "HIGH", level: domain.RiskLevelUnknown, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := moderation.ParseAllowList(tt.allowList)
			assert.Equal(t, tt.want, list.Decide(tt.level))
		})
	}
}

func randomCase(t *rapid.T, s string, label string) string {
	upper := rapid.SliceOfN(rapid.Bool(), len(s), len(s)).Draw(t, label)
	var b strings.Builder
	for i, r := range s {
		if upper[i] {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestAllowList_Decide_KnownLevels(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		allowed := rapid.SliceOfDistinct(rapid.SampledFrom(knownLevels), rapid.ID[string]).Draw(t, "allowed")
		tokens := make([]string, len(allowed))
		for i, level := range allowed {
			tokens[i] = randomCase(t, level, "case_"+level)
		}
		list := moderation.NewAllowList(tokens...)
		level := rapid.SampledFrom(knownLevels).Draw(t, "level")
		observed := domain.RiskLevel(randomCase(t, level, "observed_case"))

		member := false
		for _, a := range allowed {
			member = member || a == level
		}
		if got := list.Decide(observed); got != member {
			t.Fatalf("Decide(%q) with %v = %v, want %v", observed, tokens, got, member)
		}
	})
}

func TestAllowList_Decide_UnknownLevel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		allowed := rapid.SliceOfDistinct(rapid.SampledFrom(knownLevels), rapid.ID[string]).Draw(t, "allowed")
		list := moderation.ParseAllowList(strings.Join(allowed, ","))

		elevated := false
		for _, a := range allowed {
			elevated = elevated || a == "medium" || a == "high"
		}
		if got := list.Decide(domain.RiskLevelUnknown); got == elevated {
			t.Fatalf("Decide(unknown) with %v = %v", allowed, got)
		}
	})
}
