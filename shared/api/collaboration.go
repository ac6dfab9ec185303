package api

import "time"

type Forum struct {
	ID          int64     `json:"id"`
	Course      int64     `json:"course"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ThreadCount int       `json:"thread_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ForumRequest also names the course: the forum serializer requires it in the
// body even though the URL carries it.
type ForumRequest struct {
	Course      int64  `json:"course" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
}

type ForumPost struct {
	ID         int64     `json:"id"`
	Thread     int64     `json:"thread"`
	Author     int64     `json:"author"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	IsAnswer   bool      `json:"is_answer"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ForumThread struct {
	ID         int64       `json:"id"`
	Forum      int64       `json:"forum"`
	Author     int64       `json:"author"`
	AuthorName string      `json:"author_name"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	IsPinned   bool        `json:"is_pinned"`
	IsLocked   bool        `json:"is_locked"`
	ViewsCount int         `json:"views_count"`
	PostCount  int         `json:"post_count"`
	Posts      []ForumPost `json:"posts"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type ThreadRequest struct {
	Forum   int64  `json:"forum" validate:"required"`
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type PostRequest struct {
	Thread  int64  `json:"thread" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type ChatMessage struct {
	ID         int64     `json:"id"`
	Room       int64     `json:"room"`
	Sender     int64     `json:"sender"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// ChatRoom is a course's room with its latest messages (at most 50).
type ChatRoom struct {
	RoomID   int64         `json:"room_id"`
	Messages []ChatMessage `json:"messages"`
}

type PeerReview struct {
	ID                   int64     `json:"id"`
	AssignmentSubmission int64     `json:"assignment_submission"`
	Reviewer             int64     `json:"reviewer"`
	ReviewerName         string    `json:"reviewer_name"`
	Rating               int       `json:"rating"`
	Feedback             string    `json:"feedback"`
	Status               string    `json:"status"` // pending, completed
	CreatedAt            time.Time `json:"created_at"`
}

type PeerReviewRequest struct {
	AssignmentSubmission int64  `json:"assignment_submission" validate:"required"`
	Rating               int    `json:"rating" validate:"required"`
	Feedback             string `json:"feedback" validate:"required"`
}

type LiveSession struct {
	ID              int64     `json:"id"`
	Course          int64     `json:"course"`
	Instructor      int64     `json:"instructor"`
	InstructorName  string    `json:"instructor_name"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type LiveSessionRequest struct {
	Course          int64     `json:"course" validate:"required"`
	Title           string    `json:"title" validate:"required,max=255"`
	Description     string    `json:"description,omitempty"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
}
