package api

import (
	"context"
	"net/http"
	"net/url"
)

type coursesEnvelope struct {
	Courses []Course `json:"courses"`
}

type courseEnvelope struct {
	Course Course `json:"course"`
}

type courseDetailEnvelope struct {
	Course CourseDetail `json:"course"`
}

// ListCourses returns the full catalog.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	var out coursesEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/courses", nil, &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// GetCourse returns one course with its lessons embedded.
func (c *Client) GetCourse(ctx context.Context, courseID string) (*CourseDetail, error) {
	var out courseDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/courses/"+url.PathEscape(courseID), nil, &out); err != nil {
		return nil, err
	}
	return &out.Course, nil
}

// CreateCourse creates a course. The server restricts this to Instructor
// and Admin roles.
func (c *Client) CreateCourse(ctx context.Context, input CourseInput) (*Course, error) {
	var out courseEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/courses", input, &out); err != nil {
		return nil, err
	}
	return &out.Course, nil
}

// UpdateCourse updates a course owned by the caller (or any, for Admin).
func (c *Client) UpdateCourse(ctx context.Context, courseID string, input CourseInput) (*Course, error) {
	var out courseEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/courses/"+url.PathEscape(courseID), input, &out); err != nil {
		return nil, err
	}
	return &out.Course, nil
}

// DeleteCourse removes a course and its lessons.
func (c *Client) DeleteCourse(ctx context.Context, courseID string) error {
	return c.do(ctx, http.MethodDelete, "/api/courses/"+url.PathEscape(courseID), nil, nil)
}
