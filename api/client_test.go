package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearnhq/learnkit/api"
)

type recordedRequest struct {
	method string
	path   string
	header http.Header
	body   []byte
}

// newRecordingServer captures the last request and answers with the given
// status and JSON body.
func newRecordingServer(t *testing.T, status int, body any) (*httptest.Server, *recordedRequest) {
	t.Helper()

	last := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.method = r.Method
		last.path = r.URL.EscapedPath()
		last.header = r.Header.Clone()
		last.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(server.Close)
	return server, last
}

func TestClientRequestHeaders(t *testing.T) {
	server, last := newRecordingServer(t, http.StatusOK, map[string]any{"courses": []any{}})

	client := api.NewClient(server.URL,
		api.WithTokenSource(func() string { return "bearer-token" }),
		api.WithUserAgent("myapp/3"),
	)

	_, err := client.ListCourses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer bearer-token", last.header.Get("Authorization"))
	assert.Equal(t, "myapp/3", last.header.Get("User-Agent"))
	assert.Equal(t, "application/json", last.header.Get("Accept"))
	assert.NotEmpty(t, last.header.Get("X-Request-ID"))
}

func TestClientEmptyTokenSendsNoAuthorization(t *testing.T) {
	server, last := newRecordingServer(t, http.StatusOK, map[string]any{"courses": []any{}})

	client := api.NewClient(server.URL, api.WithTokenSource(func() string { return "" }))
	_, err := client.ListCourses(context.Background())
	require.NoError(t, err)

	assert.Empty(t, last.header.Get("Authorization"))
}

func TestClientRequestIDFromContext(t *testing.T) {
	server, last := newRecordingServer(t, http.StatusOK, map[string]any{"courses": []any{}})

	client := api.NewClient(server.URL)
	ctx := api.WithRequestID(context.Background(), "trace-123")
	_, err := client.ListCourses(ctx)
	require.NoError(t, err)

	assert.Equal(t, "trace-123", last.header.Get("X-Request-ID"))
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	server, last := newRecordingServer(t, http.StatusOK, map[string]any{"courses": []any{}})

	client := api.NewClient(server.URL + "/")
	_, err := client.ListCourses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/courses", last.path)
}

func TestClientErrorCarriesServerMessage(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})

	client := api.NewClient(server.URL)
	_, err := client.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.False(t, apiErr.Temporary())
	assert.Contains(t, apiErr.Error(), "Invalid credentials")
}

func TestClientErrorEmptyBodyLeavesMessageEmpty(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusInternalServerError, nil)

	client := api.NewClient(server.URL)
	_, err := client.Me(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.True(t, apiErr.Temporary())
	// The string form still reads sensibly.
	assert.Contains(t, apiErr.Error(), "Internal Server Error")
}

func TestClientUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := api.NewClient(url)
	_, err := client.ListCourses(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnreachable))

	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("login", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, map[string]any{
			"token": "t",
			"user":  map[string]any{"id": "u1", "email": "a@b.com", "role": "Student"},
		})

		client := api.NewClient(server.URL)
		resp, err := client.Login(context.Background(), "a@b.com", "pw")
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/api/auth/login", last.path)
		assert.Equal(t, "application/json", last.header.Get("Content-Type"))
		assert.JSONEq(t, `{"email":"a@b.com","password":"pw"}`, string(last.body))

		assert.Equal(t, "t", resp.Token)
		assert.Equal(t, "u1", resp.User.ID)
		assert.Equal(t, "Student", resp.User.Role)
	})

	t.Run("register", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusCreated, map[string]any{
			"token": "t",
			"user":  map[string]any{"id": "u2", "email": "n@b.com", "role": "Instructor"},
		})

		client := api.NewClient(server.URL)
		resp, err := client.Register(context.Background(), "n@b.com", "pw", "Instructor")
		require.NoError(t, err)

		assert.Equal(t, "/api/auth/register", last.path)
		assert.JSONEq(t, `{"email":"n@b.com","password":"pw","role":"Instructor"}`, string(last.body))
		assert.Equal(t, "Instructor", resp.User.Role)
	})

	t.Run("me", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, map[string]any{
			"user": map[string]any{"id": "u1", "email": "a@b.com", "role": "Admin"},
		})

		client := api.NewClient(server.URL)
		user, err := client.Me(context.Background())
		require.NoError(t, err)

		assert.Equal(t, http.MethodGet, last.method)
		assert.Equal(t, "/api/auth/me", last.path)
		assert.Equal(t, "Admin", user.Role)
	})

	t.Run("delete account", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, map[string]string{"message": "Account deleted successfully"})

		client := api.NewClient(server.URL)
		require.NoError(t, client.DeleteAccount(context.Background()))

		assert.Equal(t, http.MethodDelete, last.method)
		assert.Equal(t, "/api/auth/delete", last.path)
	})
}

func TestCourseEndpoints(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, map[string]any{
			"courses": []map[string]any{
				{"_id": "c1", "title": "Go Basics", "level": "beginner", "lesson_count": 3},
			},
		})

		client := api.NewClient(server.URL)
		courses, err := client.ListCourses(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "/api/courses", last.path)
		require.Len(t, courses, 1)
		assert.Equal(t, "c1", courses[0].ID)
		assert.Equal(t, 3, courses[0].LessonCount)
	})

	t.Run("get with lessons", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, map[string]any{
			"course": map[string]any{
				"_id":   "c1",
				"title": "Go Basics",
				"lessons": []map[string]any{
					{"_id": "l1", "title": "Hello", "lesson_type": "text", "order": 1},
				},
			},
		})

		client := api.NewClient(server.URL)
		detail, err := client.GetCourse(context.Background(), "c1")
		require.NoError(t, err)

		assert.Equal(t, "/api/courses/c1", last.path)
		assert.Equal(t, "c1", detail.ID)
		require.Len(t, detail.Lessons, 1)
		assert.Equal(t, "text", detail.Lessons[0].LessonType)
	})

	t.Run("create", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusCreated, map[string]any{
			"course": map[string]any{"_id": "c9", "title": "New"},
		})

		client := api.NewClient(server.URL)
		course, err := client.CreateCourse(context.Background(), api.CourseInput{Title: "New"})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/api/courses", last.path)
		assert.Equal(t, "c9", course.ID)
	})

	t.Run("id is path escaped", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, map[string]any{
			"course": map[string]any{"_id": "x"},
		})

		client := api.NewClient(server.URL)
		_, err := client.GetCourse(context.Background(), "a/b")
		require.NoError(t, err)
		assert.Equal(t, "/api/courses/a%2Fb", last.path)
	})
}

func TestLessonEndpoints(t *testing.T) {
	server, last := newRecordingServer(t, http.StatusOK, map[string]any{
		"lesson": map[string]any{"_id": "l1", "course_id": "c1", "title": "Intro"},
	})

	client := api.NewClient(server.URL)

	lesson, err := client.CreateLesson(context.Background(), "c1", api.LessonInput{Title: "Intro"})
	require.NoError(t, err)
	assert.Equal(t, "/api/courses/c1/lessons", last.path)
	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "l1", lesson.ID)

	_, err = client.UpdateLesson(context.Background(), "l1", api.LessonInput{Title: "Intro 2"})
	require.NoError(t, err)
	assert.Equal(t, "/api/lessons/l1", last.path)
	assert.Equal(t, http.MethodPut, last.method)

	require.NoError(t, client.DeleteLesson(context.Background(), "l1"))
	assert.Equal(t, "/api/lessons/l1", last.path)
	assert.Equal(t, http.MethodDelete, last.method)
}

func TestEnrollmentEndpoints(t *testing.T) {
	t.Run("enroll", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusCreated, map[string]any{
			"enrollment": map[string]any{"_id": "e1", "course_id": "c1", "progress": 0},
		})

		client := api.NewClient(server.URL)
		enrollment, err := client.Enroll(context.Background(), "c1")
		require.NoError(t, err)

		assert.Equal(t, "/api/enroll", last.path)
		assert.JSONEq(t, `{"course_id":"c1"}`, string(last.body))
		assert.Equal(t, "e1", enrollment.ID)
	})

	t.Run("unenroll", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, nil)

		client := api.NewClient(server.URL)
		require.NoError(t, client.Unenroll(context.Background(), "c1"))
		assert.Equal(t, "/api/enroll/c1", last.path)
		assert.Equal(t, http.MethodDelete, last.method)
	})

	t.Run("progress", func(t *testing.T) {
		server, last := newRecordingServer(t, http.StatusOK, map[string]any{
			"enrollment": map[string]any{"_id": "e1", "progress": 50.0, "completed_lessons": []string{"l1"}},
		})

		client := api.NewClient(server.URL)
		enrollment, err := client.UpdateProgress(context.Background(), api.ProgressUpdate{
			CourseID: "c1", LessonID: "l1", Completed: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "/api/progress", last.path)
		assert.Equal(t, http.MethodPut, last.method)
		assert.JSONEq(t, `{"course_id":"c1","lesson_id":"l1","completed":true}`, string(last.body))
		assert.InDelta(t, 50.0, enrollment.Progress, 0.001)
	})
}

func TestProfileEndpoints(t *testing.T) {
	server, last := newRecordingServer(t, http.StatusOK, map[string]any{
		"profile": map[string]any{"_id": "p1", "user_id": "u1", "first_name": "Ada"},
	})

	client := api.NewClient(server.URL)

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/profile", last.path)
	assert.Equal(t, "Ada", profile.FirstName)

	_, err = client.CreateProfile(context.Background(), api.ProfileInput{FirstName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, last.method)

	_, err = client.UpdateProfile(context.Background(), api.ProfileInput{Bio: "hi"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, last.method)

	require.NoError(t, client.DeleteProfile(context.Background()))
	assert.Equal(t, http.MethodDelete, last.method)
}
