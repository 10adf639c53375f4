package request

import "cleanmatch/internal/usecase"

type CreateClientRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	Address     string `json:"address"`
}

func (r CreateClientRequest) ToCommand() usecase.CreateClientCommand {
	return usecase.CreateClientCommand{
		Username:    r.Username,
		Password:    r.Password,
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Gender:      r.Gender,
		Age:         r.Age,
		Address:     r.Address,
	}
}

type UpdateClientRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
	Address     *string `json:"address"`
}

func (r UpdateClientRequest) ToCommand() usecase.UpdateClientCommand {
	return usecase.UpdateClientCommand{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
		Address:     r.Address,
	}
}
