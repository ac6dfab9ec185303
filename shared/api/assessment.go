package api

import "time"

type Answer struct {
	ID         int64  `json:"id"`
	AnswerText string `json:"answer_text"`
	IsCorrect  bool   `json:"is_correct"`
	Order      int    `json:"order"`
}

type Question struct {
	ID           int64    `json:"id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"` // mcq, true_false, short_answer
	Points       int      `json:"points"`
	Order        int      `json:"order"`
	Answers      []Answer `json:"answers"`
}

type Quiz struct {
	ID                 int64      `json:"id"`
	Course             int64      `json:"course"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DurationMinutes    int        `json:"duration_minutes"`
	PassingScore       int        `json:"passing_score"`
	MaxAttempts        int        `json:"max_attempts"`
	ShowAnswers        bool       `json:"show_answers"`
	RandomizeQuestions bool       `json:"randomize_questions"`
	IsProctored        bool       `json:"is_proctored"`
	QuestionCount      int        `json:"question_count"`
	Questions          []Question `json:"questions"`
}

// QuizSession is what starting a quiz returns: the attempt to submit against
// and the questions.
type QuizSession struct {
	AttemptID int64 `json:"attempt_id"`
	Quiz      Quiz  `json:"quiz"`
}

type QuizAnswer struct {
	QuestionID int64  `json:"question_id" validate:"required"`
	AnswerID   int64  `json:"answer_id,omitempty"`
	TextAnswer string `json:"text_answer,omitempty"`
}

type QuizSubmission struct {
	AttemptID int64        `json:"attempt_id" validate:"required"`
	Answers   []QuizAnswer `json:"answers" validate:"dive"`
}

type QuizAttempt struct {
	ID            int64      `json:"id"`
	Quiz          int64      `json:"quiz"`
	QuizTitle     string     `json:"quiz_title"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	Score         *float64   `json:"score"`
	Passed        bool       `json:"passed"`
	AttemptNumber int        `json:"attempt_number"`
}

type Assignment struct {
	ID                     int64     `json:"id"`
	Course                 int64     `json:"course"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	DueDate                time.Time `json:"due_date"`
	MaxPoints              int       `json:"max_points"`
	SubmissionFileRequired bool      `json:"submission_file_required"`
	AllowLateSubmission    bool      `json:"allow_late_submission"`
}

// AssignmentSubmissionRequest submits text only; file uploads need a multipart
// body the JSON client does not send.
type AssignmentSubmissionRequest struct {
	Assignment     int64  `json:"assignment" validate:"required"`
	SubmissionText string `json:"submission_text" validate:"required"`
}

type AssignmentSubmission struct {
	ID              int64      `json:"id"`
	Assignment      int64      `json:"assignment"`
	AssignmentTitle string     `json:"assignment_title"`
	Student         int64      `json:"student"`
	StudentName     string     `json:"student_name"`
	SubmissionText  string     `json:"submission_text"`
	SubmissionFile  *string    `json:"submission_file"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	Grade           *float64   `json:"grade"`
	Feedback        string     `json:"feedback"`
	GradedBy        *int64     `json:"graded_by"`
	GradedAt        *time.Time `json:"graded_at"`
}

type GradeRequest struct {
	Grade    float64 `json:"grade" validate:"min=0"`
	Feedback string  `json:"feedback,omitempty"`
}
