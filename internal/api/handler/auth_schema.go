package handler

type signUpRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"address" validate:"required"`
	Avatar   string `json:"avatar"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}
