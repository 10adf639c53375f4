package response

import (
	"time"

	"cleanmatch/internal/domain/entities"
)

type ApplicationResponse struct {
	CleanerID string    `json:"cleaner_id"`
	AppliedAt time.Time `json:"applied_at"`
}

type RequestResponse struct {
	ID              string                `json:"id"`
	ClientID        string                `json:"client_id"`
	CleanerID       string                `json:"cleaner_id,omitempty"`
	RequestType     string                `json:"request_type"`
	Status          string                `json:"status"`
	Service         string                `json:"service"`
	Date            string                `json:"date"`
	StartTime       string                `json:"start_time"`
	EndTime         string                `json:"end_time"`
	Note            string                `json:"note,omitempty"`
	Budget          float64               `json:"budget,omitempty"`
	Deadline        *time.Time            `json:"deadline,omitempty"`
	ScheduleWarning bool                  `json:"schedule_warning,omitempty"`
	Applications    []ApplicationResponse `json:"applications,omitempty"`
	AcceptedAt      *time.Time            `json:"accepted_at,omitempty"`
	Rating          int                   `json:"rating,omitempty"`
	Review          string                `json:"review,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func FromRequest(r entities.Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID,
		ClientID:        r.ClientID,
		CleanerID:       r.CleanerID,
		RequestType:     string(r.RequestType),
		Status:          string(r.Status),
		Service:         r.Service,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Note:            r.Note,
		Budget:          r.Budget,
		Deadline:        r.Deadline,
		ScheduleWarning: r.ScheduleWarning,
		AcceptedAt:      r.AcceptedAt,
		Rating:          r.Rating,
		Review:          r.Review,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, a := range r.Applications {
		resp.Applications = append(resp.Applications, ApplicationResponse{
			CleanerID: a.CleanerID,
			AppliedAt: a.AppliedAt,
		})
	}
	return resp
}

func FromRequests(requests []entities.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromRequest(r))
	}
	return out
}
