package dto

type SigninRequestDTO struct {
	Email string `json:"email" validate:"required" example:"backer@example.com"`
}

type SigninResponseDTO struct {
	Phrase string `json:"phrase" example:"furious waving Zebra"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}
