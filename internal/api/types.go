// ABOUTME: Wire types for the showcase backend API
// ABOUTME: Leads, lead drafts, and read-only content items

package api

// Lead type discriminator sent on every submission.
const LeadTypeClientRequest = "client_request"

// Known lead statuses. The backend may grow new ones; clients must pass
// unrecognized values through as plain text rather than rejecting them.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusRejected   = "rejected"
)

// KnownStatuses lists the statuses offered by the admin status picker, in
// display order.
var KnownStatuses = []string{StatusNew, StatusInProgress, StatusDone, StatusRejected}

// Lead is a service request record as returned by the backend. Optional
// fields are pointers: the backend stores them as nullable columns.
type Lead struct {
	ID          int64   `json:"id"`
	LeadType    string  `json:"lead_type"`
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	City        *string `json:"city"`
	WorkType    *string `json:"work_type"`
	Budget      *string `json:"budget"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// LeadDraft is the outgoing submission payload. Optional fields marshal as
// explicit JSON null when absent, never as an empty string.
type LeadDraft struct {
	LeadType    string  `json:"lead_type"`
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	City        *string `json:"city"`
	WorkType    *string `json:"work_type"`
	Budget      *string `json:"budget"`
	Description *string `json:"description"`
}

// FAQItem is a question/answer content entry.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Document is a downloadable document reference.
type Document struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Project is a portfolio entry; description and image are optional.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// statusUpdate is the PATCH body for a lead status mutation.
type statusUpdate struct {
	Status string `json:"status"`
}
