package request

import (
	"time"

	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/usecase"
)

// CreateRequestRequest is the client-facing booking payload. request_type
// defaults to "specific" when omitted, matching the dashboard's direct
// booking flow.
type CreateRequestRequest struct {
	Service     string     `json:"service" binding:"required"`
	Date        string     `json:"date" binding:"required"`
	StartTime   string     `json:"start_time" binding:"required"`
	EndTime     string     `json:"end_time" binding:"required"`
	Note        string     `json:"note"`
	RequestType string     `json:"request_type"`
	CleanerID   string     `json:"cleaner_id"`
	Budget      float64    `json:"budget"`
	Deadline    *time.Time `json:"deadline"`
}

func (r CreateRequestRequest) ToCommand() usecase.CreateRequestCommand {
	return usecase.CreateRequestCommand{
		Service:     r.Service,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Note:        r.Note,
		RequestType: entities.RequestType(r.RequestType),
		CleanerID:   r.CleanerID,
		Budget:      r.Budget,
		Deadline:    r.Deadline,
	}
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SelectApplicationRequest struct {
	CleanerID string `json:"cleaner_id" binding:"required"`
}

type RateRequestRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}
