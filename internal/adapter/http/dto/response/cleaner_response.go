package response

import (
	"time"

	"cleanmatch/internal/domain/entities"
)

type ScheduleWindowResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CleanerResponse is the public profile shape; credentials never leave the
// service.
type CleanerResponse struct {
	ID           string                            `json:"id"`
	Username     string                            `json:"username"`
	Name         string                            `json:"name"`
	PhoneNumber  string                            `json:"phone_number"`
	Email        string                            `json:"email"`
	Gender       string                            `json:"gender"`
	Age          int                               `json:"age"`
	Service      []string                          `json:"service"`
	HourlyPrice  float64                           `json:"hourly_price"`
	Stars        float64                           `json:"stars"`
	RatingCount  int                               `json:"rating_count"`
	Comments     []string                          `json:"comments,omitempty"`
	Schedule     map[string]ScheduleWindowResponse `json:"schedule,omitempty"`
	ScheduleType string                            `json:"schedule_type,omitempty"`
	CreatedAt    time.Time                         `json:"created_at"`
}

func FromCleaner(c entities.Cleaner) CleanerResponse {
	resp := CleanerResponse{
		ID:           c.ID,
		Username:     c.Username,
		Name:         c.Name,
		PhoneNumber:  c.PhoneNumber,
		Email:        c.Email,
		Gender:       c.Gender,
		Age:          c.Age,
		Service:      c.Service,
		HourlyPrice:  c.HourlyPrice,
		Stars:        c.Stars,
		RatingCount:  c.RatingCount,
		Comments:     c.Comments,
		ScheduleType: string(c.ScheduleType),
		CreatedAt:    c.CreatedAt,
	}
	if len(c.Schedule) > 0 {
		resp.Schedule = make(map[string]ScheduleWindowResponse, len(c.Schedule))
		for day, w := range c.Schedule {
			resp.Schedule[day] = ScheduleWindowResponse{StartTime: w.StartTime, EndTime: w.EndTime}
		}
	}
	return resp
}

func FromCleaners(cleaners []entities.Cleaner) []CleanerResponse {
	out := make([]CleanerResponse, 0, len(cleaners))
	for _, c := range cleaners {
		out = append(out, FromCleaner(c))
	}
	return out
}

type CleanerLoginResponse struct {
	Token   string          `json:"token"`
	Cleaner CleanerResponse `json:"cleaner"`
}
