package request

type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"kim@example.com"`
	Password string `json:"password" form:"password" example:"s3cret-pass"`
}
