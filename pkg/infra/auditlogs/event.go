package auditlogs

import "time"

type Event struct {
	Event     EventInfo `json:"event"`
	Target    Target    `json:"target"`
	Context   Context   `json:"context"`
	Timestamp time.Time `json:"timestamp"`
}

type EventInfo struct {
	Type         string `json:"type"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type Target struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type Context struct {
	AuthorID  string `json:"authorId,omitempty"`
	ContextID string `json:"contextId,omitempty"`
	Checker   string `json:"checker,omitempty"`
	RiskLevel string `json:"riskLevel,omitempty"`
	Failure   string `json:"failure,omitempty"`
}
