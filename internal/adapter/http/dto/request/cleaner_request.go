package request

import (
	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/usecase"
)

type ScheduleWindowPayload struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateCleanerRequest struct {
	Username     string                           `json:"username" binding:"required"`
	Password     string                           `json:"password" binding:"required"`
	Name         string                           `json:"name" binding:"required"`
	PhoneNumber  string                           `json:"phone_number" binding:"required"`
	Email        string                           `json:"email" binding:"required"`
	Gender       string                           `json:"gender" binding:"required"`
	Age          int                              `json:"age" binding:"required"`
	Service      []string                         `json:"service" binding:"required"`
	HourlyPrice  float64                          `json:"hourly_price" binding:"required"`
	Schedule     map[string]ScheduleWindowPayload `json:"schedule"`
	ScheduleType string                           `json:"schedule_type"`
}

func (r CreateCleanerRequest) ToCommand() usecase.CreateCleanerCommand {
	return usecase.CreateCleanerCommand{
		Username:     r.Username,
		Password:     r.Password,
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		Email:        r.Email,
		Gender:       r.Gender,
		Age:          r.Age,
		Service:      r.Service,
		HourlyPrice:  r.HourlyPrice,
		Schedule:     toSchedule(r.Schedule),
		ScheduleType: entities.ScheduleType(r.ScheduleType),
	}
}

type UpdateCleanerRequest struct {
	Name         *string                          `json:"name"`
	PhoneNumber  *string                          `json:"phone_number"`
	Password     *string                          `json:"password"`
	Service      []string                         `json:"service"`
	HourlyPrice  *float64                         `json:"hourly_price"`
	Schedule     map[string]ScheduleWindowPayload `json:"schedule"`
	ScheduleType *string                          `json:"schedule_type"`
}

func (r UpdateCleanerRequest) ToCommand() usecase.UpdateCleanerCommand {
	cmd := usecase.UpdateCleanerCommand{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
		Service:     r.Service,
		HourlyPrice: r.HourlyPrice,
		Schedule:    toSchedule(r.Schedule),
	}
	if r.ScheduleType != nil {
		st := entities.ScheduleType(*r.ScheduleType)
		cmd.ScheduleType = &st
	}
	return cmd
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func toSchedule(payload map[string]ScheduleWindowPayload) entities.Schedule {
	if payload == nil {
		return nil
	}
	s := make(entities.Schedule, len(payload))
	for day, w := range payload {
		s[day] = entities.ScheduleWindow{StartTime: w.StartTime, EndTime: w.EndTime}
	}
	return s
}
