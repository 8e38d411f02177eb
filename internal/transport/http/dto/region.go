package dto

type CreateRegionInput struct {
	Name string `json:"name" example:"Seoul"`
}
