package dto

import "gallery_board/internal/domain/models"

type ListGalleriesInput struct {
	RegionID int64 `query:"region_id" example:"1"`
	Page     int   `query:"page" example:"1"`
}

type CreateGalleryInput struct {
	RegionID    int64  `json:"region_id" example:"1"`
	Name        string `json:"name" example:"Street food"`
	Description string `json:"description" example:"Where to eat tonight"`
	// ManagerID is taken from the bearer token.
	ManagerID   int64  `json:"manager_id" swaggerignore:"true"`
	SubManager1 *int64 `json:"sub_manager_1,omitempty"`
	SubManager2 *int64 `json:"sub_manager_2,omitempty"`
	SubManager3 *int64 `json:"sub_manager_3,omitempty"`
	SubManager4 *int64 `json:"sub_manager_4,omitempty"`
	SubManager5 *int64 `json:"sub_manager_5,omitempty"`
}

func (in CreateGalleryInput) ToDomain() models.Gallery {
	return models.Gallery{
		RegionID:    in.RegionID,
		Name:        in.Name,
		Description: in.Description,
		ManagerID:   in.ManagerID,
		SubManager1: in.SubManager1,
		SubManager2: in.SubManager2,
		SubManager3: in.SubManager3,
		SubManager4: in.SubManager4,
		SubManager5: in.SubManager5,
	}
}

type DeleteGalleryInput struct {
	RegionID  int64 `json:"region_id" example:"1"`
	GalleryID int64 `json:"gallery_id" example:"3"`
	ManagerID int64 `json:"manager_id" swaggerignore:"true"`
}
