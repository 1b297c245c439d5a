package auditlogs

const (
	EventTypeContentRejected = "moderation.rejected"
	EventTypeFailOpen        = "moderation.fail_open"
)

const (
	CategoryContentSecurity = "content_security"
)

const (
	StatusRejected = "rejected"
	StatusApproved = "approved"
)

const (
	TargetTypePost  = "post"
	TargetTypeImage = "image"
)
