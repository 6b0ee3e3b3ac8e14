package dto

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"admin@fixora.app"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Token    string `json:"token"`
	Email    string `json:"email" example:"admin@fixora.app"`
	Redirect string `json:"redirect" example:"/admin"`
}

type LogoutResponseDTO struct {
	Message string `json:"message" example:"signed out"`
}
