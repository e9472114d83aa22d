// Package clients wraps the remote registration registry. The registry owns
// seat allocation, waitlist promotion and all persistent state; everything
// here is plain JSON over HTTP with the caller's credentials attached.
package clients

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models"
	rootservices "github.com/yeongbeomSong/CourseEnroll/services"
)

// RegistryClient exposes the registry operations the mid-tier needs.
type RegistryClient struct {
	cfg rootservices.Config
}

var (
	registryClient     *RegistryClient
	registryClientOnce sync.Once
)

// Registry returns a singleton client ready to call the registration API.
func Registry() *RegistryClient {
	registryClientOnce.Do(func() {
		registryClient = &RegistryClient{
			cfg: rootservices.GetConfig(),
		}
	})
	return registryClient
}

// ListCourses fetches the full catalog with live seat counts.
func (c *RegistryClient) ListCourses(ctx context.Context, headers map[string]string) ([]models.Course, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "courses")

	var courses []models.Course
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &courses, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches a single catalog entry.
func (c *RegistryClient) GetCourse(ctx context.Context, headers map[string]string, courseID int64) (*models.Course, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "courses", strconv.FormatInt(courseID, 10))

	var course models.Course
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &course, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListDepartments fetches the public department list (used by signup).
func (c *RegistryClient) ListDepartments(ctx context.Context, headers map[string]string) ([]models.Department, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "departments")

	var departments []models.Department
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &departments, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return departments, nil
}

// MyEnrollments fetches the caller's confirmed memberships.
func (c *RegistryClient) MyEnrollments(ctx context.Context, headers map[string]string) ([]models.MembershipRecord, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "enrollments", "me")

	var records []models.MembershipRecord
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &records, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return records, nil
}

// WaitingPositions fetches the caller's 1-based waitlist positions.
// Registry shape: { "positions": [ { "courseId": 1, "position": 2 }, ... ] }.
func (c *RegistryClient) WaitingPositions(ctx context.Context, headers map[string]string) ([]models.WaitlistEntry, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "enrollments", "waiting")

	var payload struct {
		Positions []models.WaitlistEntry `json:"positions"`
	}
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &payload, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	if payload.Positions == nil {
		return []models.WaitlistEntry{}, nil
	}
	return payload.Positions, nil
}

// Enroll executes the enroll-or-waitlist endpoint for a course.
func (c *RegistryClient) Enroll(ctx context.Context, headers map[string]string, courseID int64) (models.EnrollResult, error) {
	if err := ctxErr(ctx); err != nil {
		return models.EnrollResult{}, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "enrollments")
	body := map[string]interface{}{"courseId": courseID}

	var result models.EnrollResult
	if err := helpers.DoJSONWithHeaders("POST", endpoint, headers, body, &result, c.cfg.RequestTimeout); err != nil {
		return models.EnrollResult{}, err
	}
	return result, nil
}

// CancelEnrollment revokes the caller's enrollment in a course.
func (c *RegistryClient) CancelEnrollment(ctx context.Context, headers map[string]string, courseID int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "enrollments", strconv.FormatInt(courseID, 10))
	return helpers.DoJSONWithHeaders("DELETE", endpoint, headers, nil, nil, c.cfg.RequestTimeout)
}

// LeaveWaiting abandons the caller's queue slot for a course.
func (c *RegistryClient) LeaveWaiting(ctx context.Context, headers map[string]string, courseID int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "enrollments", "waiting", strconv.FormatInt(courseID, 10))
	return helpers.DoJSONWithHeaders("DELETE", endpoint, headers, nil, nil, c.cfg.RequestTimeout)
}

// Login proxies the credential exchange.
func (c *RegistryClient) Login(ctx context.Context, headers map[string]string, body map[string]interface{}) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "auth", "login")

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("POST", endpoint, headers, body, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// Signup proxies account creation.
func (c *RegistryClient) Signup(ctx context.Context, headers map[string]string, body map[string]interface{}) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "auth", "signup")

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("POST", endpoint, headers, body, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// Me fetches the caller's account profile.
func (c *RegistryClient) Me(ctx context.Context, headers map[string]string) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "users", "me")

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// ProfessorCourses lists the courses owned by the calling professor.
func (c *RegistryClient) ProfessorCourses(ctx context.Context, headers map[string]string) ([]models.Course, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "professors", "courses")

	var courses []models.Course
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &courses, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse registers a new course for the calling professor.
func (c *RegistryClient) CreateCourse(ctx context.Context, headers map[string]string, body map[string]interface{}) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "professors", "courses")

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("POST", endpoint, headers, body, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProfessorCourse fetches one of the calling professor's courses.
func (c *RegistryClient) GetProfessorCourse(ctx context.Context, headers map[string]string, courseID int64) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "professors", "courses", strconv.FormatInt(courseID, 10))

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCourse updates one of the calling professor's courses.
func (c *RegistryClient) UpdateCourse(ctx context.Context, headers map[string]string, courseID int64, body map[string]interface{}) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "professors", "courses", strconv.FormatInt(courseID, 10))

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("PUT", endpoint, headers, body, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// CourseStudents lists the students enrolled in one of the professor's courses.
func (c *RegistryClient) CourseStudents(ctx context.Context, headers map[string]string, courseID int64) ([]map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "professors", "courses", strconv.FormatInt(courseID, 10), "students")

	var out []map[string]interface{}
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// Admin surface: department CRUD, account management and catalog monitoring.

func (c *RegistryClient) AdminListDepartments(ctx context.Context, headers map[string]string) ([]models.Department, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "admin", "departments")

	var departments []models.Department
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &departments, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *RegistryClient) AdminCreateDepartment(ctx context.Context, headers map[string]string, body map[string]interface{}) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "admin", "departments")

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("POST", endpoint, headers, body, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RegistryClient) AdminUpdateDepartment(ctx context.Context, headers map[string]string, departmentID int64, body map[string]interface{}) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "admin", "departments", strconv.FormatInt(departmentID, 10))

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("PUT", endpoint, headers, body, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RegistryClient) AdminDeleteDepartment(ctx context.Context, headers map[string]string, departmentID int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "admin", "departments", strconv.FormatInt(departmentID, 10))
	return helpers.DoJSONWithHeaders("DELETE", endpoint, headers, nil, nil, c.cfg.RequestTimeout)
}

func (c *RegistryClient) AdminListUsers(ctx context.Context, headers map[string]string, query map[string]string) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "admin", "users")
	endpoint = appendQuery(endpoint, query)

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &out, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RegistryClient) AdminDeleteUser(ctx context.Context, headers map[string]string, userID int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "admin", "users", strconv.FormatInt(userID, 10))
	return helpers.DoJSONWithHeaders("DELETE", endpoint, headers, nil, nil, c.cfg.RequestTimeout)
}

func (c *RegistryClient) AdminListCourses(ctx context.Context, headers map[string]string) ([]models.Course, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.RegistryBaseURL, "admin", "courses")

	var courses []models.Course
	if err := helpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &courses, c.cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return courses, nil
}

func appendQuery(endpoint string, query map[string]string) string {
	values := url.Values{}
	for k, v := range query {
		if strings.TrimSpace(v) != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return endpoint
	}
	return endpoint + "?" + values.Encode()
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
