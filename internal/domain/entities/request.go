package entities

import "time"

// RequestStatus represents the lifecycle of a cleaning request.
//
// Domain notes:
//   - "open" only exists for general requests that no cleaner has filled yet.
//   - "completed", "declined" and "cancelled" are terminal; no transition
//     ever leaves them.

type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "open"
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusCompleted RequestStatus = "completed"
)

// IsTerminal reports whether no further transition may leave the status.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusDeclined, RequestStatusCancelled, RequestStatusCompleted:
		return true
	}
	return false
}

// RequestType distinguishes direct bookings from open offers.
//
// A general request becomes specific forever once a cleaner is selected;
// there is no way back to open/general.

type RequestType string

const (
	RequestTypeSpecific RequestType = "specific"
	RequestTypeGeneral  RequestType = "general"
)

// Application is a cleaner's expressed interest in an open general request.
// Applications are embedded in their Request, there is no separate
// collection.
type Application struct {
	CleanerID string    `json:"cleaner_id"`
	AppliedAt time.Time `json:"applied_at"`
}

// Request is the central entity of the marketplace, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cleaner_id-index): cleaner_id
//   - GSI2 (client_id-index): client_id
//
// Concurrency model:
//   - Every status transition is a single conditional UpdateItem keyed on
//     the current status, so two racing callers can never both win.

type Request struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	// CleanerID is empty for a general request until one is selected.
	CleanerID string `json:"cleaner_id,omitempty"`

	RequestType RequestType   `json:"request_type"`
	Status      RequestStatus `json:"status"`

	Service   string `json:"service"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note,omitempty"`

	// Budget and Deadline only apply to general requests.
	Budget   float64    `json:"budget,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`

	// ScheduleWarning marks a booking outside a NORMAL-schedule cleaner's
	// declared hours. Advisory only; STRICT violations are rejected instead.
	ScheduleWarning bool `json:"schedule_warning,omitempty"`

	Applications []Application `json:"applications,omitempty"`

	AcceptedAt *time.Time `json:"accepted_at,omitempty"`

	// Rating and Review are set at most once, by the owning client, after
	// completion. Rating 0 means "not rated yet".
	Rating int    `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasApplicant reports whether the cleaner already applied.
func (r Request) HasApplicant(cleanerID string) bool {
	for _, a := range r.Applications {
		if a.CleanerID == cleanerID {
			return true
		}
	}
	return false
}
