package entities

import "time"

// Client is the service-requester profile. It owns zero or more Requests;
// the Request.ClientID field is the authority for cancel/rate permission.
//
// Storage model (DynamoDB):
//   - PK: id

type Client struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Gender      string `json:"gender,omitempty"`
	Age         int    `json:"age,omitempty"`
	Address     string `json:"address,omitempty"`

	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
