package response

import (
	"time"

	"cleanmatch/internal/domain/entities"
)

type ClientResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Gender      string    `json:"gender,omitempty"`
	Age         int       `json:"age,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Username:    c.Username,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Gender:      c.Gender,
		Age:         c.Age,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
	}
}

type ClientLoginResponse struct {
	Token  string         `json:"token"`
	Client ClientResponse `json:"client"`
}
