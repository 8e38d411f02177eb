package dto

import "gallery_board/internal/domain/models"

// RegisterInput is the payload of POST /register.
type RegisterInput struct {
	UserName             string `json:"user_name" example:"kim"`
	Email                string `json:"email" example:"kim@example.com"`
	Password             string `json:"password" example:"s3cret-pass"`
	PasswordConfirmation string `json:"password_confirmation" example:"s3cret-pass"`
}

func (in RegisterInput) ToDomain(passwordHash []byte) models.User {
	return models.User{
		UserName: in.UserName,
		Email:    in.Email,
		Password: passwordHash,
		Role:     models.RoleUser,
	}
}
