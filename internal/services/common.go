// Package services holds the request-facing business logic: it reads through
// the cache layer, derives per-caller views and drives mutations against the
// registration registry.
package services

import (
	"context"
	"errors"
	"net/http"
	"sync"

	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	"github.com/yeongbeomSong/CourseEnroll/internal/cache"
	"github.com/yeongbeomSong/CourseEnroll/internal/clients"
	"github.com/yeongbeomSong/CourseEnroll/internal/enrollment"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models"
	rootservices "github.com/yeongbeomSong/CourseEnroll/services"
)

var (
	cacheManager     *cache.Manager
	cacheManagerOnce sync.Once
)

// CacheManager returns the process-wide snapshot cache. The catalog loader
// authenticates with the service account; session loaders use each caller's
// own token.
func CacheManager() *cache.Manager {
	cacheManagerOnce.Do(func() {
		cfg := rootservices.GetConfig()
		cacheManager = cache.NewManager(registrySource{}, cache.Options{
			CatalogPollInterval: cfg.CatalogPollInterval,
			SessionIdleTTL:      cfg.SessionIdleTTL,
		})
	})
	return cacheManager
}

// registrySource adapts the registry client to the cache loaders.
type registrySource struct{}

func (registrySource) Catalog(ctx context.Context) ([]models.Course, error) {
	cfg := rootservices.GetConfig()
	return clients.Registry().ListCourses(ctx, internalhelpers.BearerHeaders(cfg.ServiceBearerToken))
}

func (registrySource) Memberships(ctx context.Context, token string) ([]models.MembershipRecord, error) {
	return clients.Registry().MyEnrollments(ctx, internalhelpers.BearerHeaders(token))
}

func (registrySource) WaitingPositions(ctx context.Context, token string) ([]models.WaitlistEntry, error) {
	return clients.Registry().WaitingPositions(ctx, internalhelpers.BearerHeaders(token))
}

// registryActions adapts the registry client to the mutation coordinator,
// forwarding the headers of the request that triggered the mutation.
type registryActions struct {
	headers map[string]string
}

func (a registryActions) Apply(ctx context.Context, courseID int64) (models.EnrollResult, error) {
	return clients.Registry().Enroll(ctx, a.headers, courseID)
}

func (a registryActions) Cancel(ctx context.Context, courseID int64) error {
	return clients.Registry().CancelEnrollment(ctx, a.headers, courseID)
}

func (a registryActions) LeaveWaitlist(ctx context.Context, courseID int64) error {
	return clients.Registry().LeaveWaiting(ctx, a.headers, courseID)
}

func requestContext(webctx *webcontext.Context) context.Context {
	if webctx != nil && webctx.Request != nil {
		return webctx.Request.Context()
	}
	return context.Background()
}

// studentSession authenticates the caller as a student and returns their cache
// session, refreshed with the request's bearer token.
func studentSession(webctx *webcontext.Context) (*cache.Session, error) {
	if err := internalhelpers.RequireRole(webctx, internalhelpers.RoleStudent); err != nil {
		return nil, helpers.NewAppError(http.StatusForbidden, "student role required", err)
	}
	studentID, err := internalhelpers.GetUserID(webctx)
	if err != nil {
		return nil, helpers.NewAppError(http.StatusUnauthorized, "authentication required", err)
	}
	token, err := internalhelpers.BearerToken(webctx)
	if err != nil {
		return nil, helpers.NewAppError(http.StatusUnauthorized, "authentication required", err)
	}
	return CacheManager().Session(studentID, token), nil
}

// sessionSnapshots reads the caller's membership and waitlist snapshots and
// indexes them for status resolution.
func sessionSnapshots(ctx context.Context, session *cache.Session) (enrollment.MembershipSet, enrollment.WaitlistIndex, error) {
	records, err := session.Memberships.Get(ctx)
	if err != nil {
		return nil, nil, helpers.NewAppError(http.StatusBadGateway, "could not load enrollments", err)
	}
	memberships, err := enrollment.NewMembershipSet(records)
	if err != nil {
		return nil, nil, helpers.NewAppError(http.StatusBadGateway, "inconsistent enrollment data", err)
	}
	entries, err := session.Waitlist.Get(ctx)
	if err != nil {
		return nil, nil, helpers.NewAppError(http.StatusBadGateway, "could not load waitlist positions", err)
	}
	return memberships, enrollment.NewWaitlistIndex(entries), nil
}

// remoteError maps a registry call failure to the status and message the
// frontend should see.
func remoteError(err error, fallback string) *helpers.AppError {
	status := http.StatusBadGateway
	var he *helpers.HTTPError
	if errors.As(err, &he) {
		status = he.Status
	}
	message := helpers.RemoteMessage(err)
	if message == "" {
		message = fallback
	}
	return helpers.NewAppError(status, message, err)
}
