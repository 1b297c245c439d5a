package moderation

// Classification is what a remote classifier reported for one image.
type Classification struct {
	RequestID string
	Code      int
	RiskLevel RiskLevel
	Labels    []string
}
