package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"donor@example.com"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required" example:"Jordan Lee"`
	Role     string `json:"role" example:"donor"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"donor@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
