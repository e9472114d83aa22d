package helpers

import (
	"net/http"

	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	"github.com/yeongbeomSong/CourseEnroll/models/requestresponse"
)

// Ok builds a standard successful response.
func Ok(data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusOK, "OK", data)
}

// Fail builds a standard error response.
func Fail(status int, message string) internaldto.APIResponseDTO {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return requestresponse.NewError(status, message, nil)
}
