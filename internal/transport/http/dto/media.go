package dto

import "mime/multipart"

type UploadImageInput struct {
	Image *multipart.FileHeader `form:"image"`
}
