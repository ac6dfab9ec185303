package api

import "time"

type RecentActivity struct {
	CourseTitle  string    `json:"course_title"`
	Progress     float64   `json:"progress"`
	LastAccessed time.Time `json:"last_accessed"`
}

type StudentDashboard struct {
	TotalCourses      int              `json:"total_courses"`
	CompletedCourses  int              `json:"completed_courses"`
	InProgressCourses int              `json:"in_progress_courses"`
	TotalPoints       int              `json:"total_points"`
	RecentActivity    []RecentActivity `json:"recent_activity"`
}

// CourseAnalytics is the instructor's live summary of one course.
type CourseAnalytics struct {
	TotalEnrollments int      `json:"total_enrollments"`
	TotalCompletions int      `json:"total_completions"`
	AverageProgress  float64  `json:"average_progress"`
	AverageRating    *float64 `json:"average_rating"`
	CompletionRate   float64  `json:"completion_rate"`
}

type StudentEngagement struct {
	ID                    int64     `json:"id"`
	Student               int64     `json:"student"`
	StudentName           string    `json:"student_name"`
	Course                int64     `json:"course"`
	CourseTitle           string    `json:"course_title"`
	TotalTimeSpentMinutes int       `json:"total_time_spent_minutes"`
	LessonsCompleted      int       `json:"lessons_completed"`
	QuizzesTaken          int       `json:"quizzes_taken"`
	ForumPosts            int       `json:"forum_posts"`
	LastActivity          time.Time `json:"last_activity"`
	EngagementScore       float64   `json:"engagement_score"`
}

type InstructorCourseStats struct {
	CourseID         int64    `json:"course_id"`
	CourseTitle      string   `json:"course_title"`
	TotalEnrollments int      `json:"total_enrollments"`
	ActiveStudents   int      `json:"active_students"`
	CompletionRate   float64  `json:"completion_rate"`
	AverageProgress  float64  `json:"average_progress"`
	AverageRating    *float64 `json:"average_rating"`
}
