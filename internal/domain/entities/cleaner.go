package entities

import "time"

// ScheduleType decides how a cleaner's declared weekly hours are applied
// when a booking is created.
//
//   - STRICT: hours are a hard constraint, bookings outside them are
//     rejected.
//   - NORMAL: hours are a preference, bookings outside them go through but
//     carry a warning flag.

type ScheduleType string

const (
	ScheduleTypeStrict ScheduleType = "STRICT"
	ScheduleTypeNormal ScheduleType = "NORMAL"
)

// ScheduleWindow is the declared working window for one weekday,
// "HH:MM"-formatted local times.
type ScheduleWindow struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Schedule maps weekday names (time.Weekday.String(), e.g. "Monday") to a
// working window. Days without an entry count as not declared.
type Schedule map[string]ScheduleWindow

// Cleaner is the service-provider profile.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stars is a derived aggregate, recomputed from completed-request ratings;
// clients never write it directly. RatingCount exists so the average can be
// updated incrementally without rereading every rating.

type Cleaner struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`

	Service     []string `json:"service"`
	HourlyPrice float64  `json:"hourly_price"`

	Stars       float64  `json:"stars"`
	RatingCount int      `json:"rating_count"`
	Comments    []string `json:"comments,omitempty"`

	Schedule     Schedule     `json:"schedule,omitempty"`
	ScheduleType ScheduleType `json:"schedule_type,omitempty"`

	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OffersService reports whether the cleaner lists the given category.
func (c Cleaner) OffersService(service string) bool {
	for _, s := range c.Service {
		if s == service {
			return true
		}
	}
	return false
}

// CleanerFilter is the listing predicate. Nil ranges are unconstrained;
// supplied criteria all have to match (intersection, not union).
type CleanerFilter struct {
	Stars   *Range
	Price   *Range
	Age     *Range
	Gender  string
	Service string
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// IsEmpty reports whether no criterion was supplied at all.
func (f CleanerFilter) IsEmpty() bool {
	return f.Stars == nil && f.Price == nil && f.Age == nil && f.Gender == "" && f.Service == ""
}
