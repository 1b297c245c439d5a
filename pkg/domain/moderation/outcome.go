package moderation

// Outcome is the only externally observable result of a moderation check.
type Outcome struct {
	Approved bool `json:"approved"`
}

func Approve() Outcome {
	return Outcome{Approved: true}
}

func Reject() Outcome {
	return Outcome{Approved: false}
}
