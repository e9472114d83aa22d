package services

import (
	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/internal/clients"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models"
)

// ListDepartments returns the department list. Departments change rarely, so
// this is a straight passthrough rather than a cached snapshot.
func ListDepartments(webctx *webcontext.Context) ([]models.Department, error) {
	departments, err := clients.Registry().ListDepartments(requestContext(webctx), internalhelpers.OutboundHeaders(webctx))
	if err != nil {
		return nil, remoteError(err, "could not load departments")
	}
	if departments == nil {
		departments = []models.Department{}
	}
	return departments, nil
}
