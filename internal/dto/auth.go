package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"sam.carter"`
	Password string `json:"password" example:"s3cret-pass"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"sam.carter"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"Login successful"`
}
