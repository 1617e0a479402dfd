package api

import (
	"context"
	"net/http"
	"net/url"
)

type enrollRequest struct {
	CourseID string `json:"course_id"`
}

type enrollmentEnvelope struct {
	Enrollment Enrollment `json:"enrollment"`
}

type enrollmentsEnvelope struct {
	Enrollments []Enrollment `json:"enrollments"`
}

// Enroll enrolls the current student in a course.
func (c *Client) Enroll(ctx context.Context, courseID string) (*Enrollment, error) {
	var out enrollmentEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/enroll", enrollRequest{CourseID: courseID}, &out); err != nil {
		return nil, err
	}
	return &out.Enrollment, nil
}

// Unenroll removes the current student's enrollment in a course.
func (c *Client) Unenroll(ctx context.Context, courseID string) error {
	return c.do(ctx, http.MethodDelete, "/api/enroll/"+url.PathEscape(courseID), nil, nil)
}

// ListEnrollments returns enrollments scoped by the caller's role:
// a student sees their own, an instructor sees those of their courses.
func (c *Client) ListEnrollments(ctx context.Context) ([]Enrollment, error) {
	var out enrollmentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/enrollments", nil, &out); err != nil {
		return nil, err
	}
	return out.Enrollments, nil
}

// UpdateProgress marks a lesson complete or incomplete and returns the
// recalculated enrollment.
func (c *Client) UpdateProgress(ctx context.Context, update ProgressUpdate) (*Enrollment, error) {
	var out enrollmentEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/progress", update, &out); err != nil {
		return nil, err
	}
	return &out.Enrollment, nil
}
