package api

// User is the account record returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse is the body of a successful login or registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Course is a catalog entry. Field names mirror the server's wire format.
type Course struct {
	ID           string  `json:"_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	InstructorID string  `json:"instructor_id"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Duration     int     `json:"duration"`
	Level        string  `json:"level"`
	IsPublished  bool    `json:"is_published"`
	LessonCount  int     `json:"lesson_count"`
}

// CourseInput is the writable subset of a course.
type CourseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Duration    int     `json:"duration,omitempty"`
	Level       string  `json:"level,omitempty"`
	IsPublished bool    `json:"is_published,omitempty"`
}

// CourseDetail is a course with its lessons embedded, as returned by
// GetCourse.
type CourseDetail struct {
	Course
	Lessons []Lesson `json:"lessons"`
}

// Lesson belongs to a course. LessonType is "text" or "video".
type Lesson struct {
	ID         string `json:"_id"`
	CourseID   string `json:"course_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	LessonType string `json:"lesson_type"`
	VideoURL   string `json:"video_url"`
	Order      int    `json:"order"`
	Duration   int    `json:"duration"`
}

// LessonInput is the writable subset of a lesson.
type LessonInput struct {
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	LessonType string `json:"lesson_type,omitempty"`
	VideoURL   string `json:"video_url,omitempty"`
	Order      int    `json:"order,omitempty"`
	Duration   int    `json:"duration,omitempty"`
}

// Enrollment links a student to a course. Course is populated by
// ListEnrollments.
type Enrollment struct {
	ID               string   `json:"_id"`
	StudentID        string   `json:"student_id"`
	CourseID         string   `json:"course_id"`
	Progress         float64  `json:"progress"`
	CompletedLessons []string `json:"completed_lessons"`
	Course           *Course  `json:"course,omitempty"`
}

// ProgressUpdate marks a lesson complete or incomplete within an
// enrollment.
type ProgressUpdate struct {
	CourseID  string `json:"course_id"`
	LessonID  string `json:"lesson_id"`
	Completed bool   `json:"completed"`
}

// Profile is the free-form account profile.
type Profile struct {
	ID        string `json:"_id"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ProfileInput is the writable subset of a profile.
type ProfileInput struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}
