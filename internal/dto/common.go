package dto

import (
	"github.com/yeongbeomSong/CourseEnroll/models/requestresponse"
)

// APIResponseDTO reuses the standard DTO exposed by requestresponse.
type APIResponseDTO = requestresponse.APIResponseDTO
