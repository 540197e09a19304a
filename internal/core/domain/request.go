package domain

// RequestContext carries the per-request client facts recorded in sessions
// and audit entries. It is passed explicitly into every service call.
type RequestContext struct {
	IP        string
	UserAgent string
	RequestID string
}
