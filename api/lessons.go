package api

import (
	"context"
	"net/http"
	"net/url"
)

type lessonsEnvelope struct {
	Lessons []Lesson `json:"lessons"`
}

type lessonEnvelope struct {
	Lesson Lesson `json:"lesson"`
}

// ListLessons returns a course's lessons in display order.
func (c *Client) ListLessons(ctx context.Context, courseID string) ([]Lesson, error) {
	var out lessonsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/courses/"+url.PathEscape(courseID)+"/lessons", nil, &out); err != nil {
		return nil, err
	}
	return out.Lessons, nil
}

// CreateLesson adds a lesson to a course. Instructor/Admin only, and
// instructors may only touch their own courses; both checks are
// server-side.
func (c *Client) CreateLesson(ctx context.Context, courseID string, input LessonInput) (*Lesson, error) {
	var out lessonEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/courses/"+url.PathEscape(courseID)+"/lessons", input, &out); err != nil {
		return nil, err
	}
	return &out.Lesson, nil
}

// UpdateLesson updates a lesson.
func (c *Client) UpdateLesson(ctx context.Context, lessonID string, input LessonInput) (*Lesson, error) {
	var out lessonEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/lessons/"+url.PathEscape(lessonID), input, &out); err != nil {
		return nil, err
	}
	return &out.Lesson, nil
}

// DeleteLesson removes a lesson.
func (c *Client) DeleteLesson(ctx context.Context, lessonID string) error {
	return c.do(ctx, http.MethodDelete, "/api/lessons/"+url.PathEscape(lessonID), nil, nil)
}
