package api

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CourseCount int       `json:"course_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Course is the list representation. Price is a decimal string ("19.99").
type Course struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	InstructorName   string    `json:"instructor_name"`
	CategoryName     string    `json:"category_name"`
	Thumbnail        *string   `json:"thumbnail"`
	Status           string    `json:"status"`
	Difficulty       string    `json:"difficulty"`
	Price            string    `json:"price"`
	IsFree           bool      `json:"is_free"`
	DurationHours    int       `json:"duration_hours"`
	Language         string    `json:"language"`
	TotalEnrollments int       `json:"total_enrollments"`
	AverageRating    *float64  `json:"average_rating"`
	CreatedAt        time.Time `json:"created_at"`
}

type Lesson struct {
	ID              int64  `json:"id"`
	Module          int64  `json:"module"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ContentType     string `json:"content_type"`
	ContentText     string `json:"content_text"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes"`
	Order           int    `json:"order"`
	IsPreview       bool   `json:"is_preview"`
}

type Module struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Order       int      `json:"order"`
	LessonCount int      `json:"lesson_count"`
	Lessons     []Lesson `json:"lessons"`
}

type Review struct {
	ID           int64     `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	CreatedAt    time.Time `json:"created_at"`
}

type CourseDetail struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	InstructorName   string    `json:"instructor_name"`
	InstructorBio    string    `json:"instructor_bio"`
	Category         *Category `json:"category"`
	Status           string    `json:"status"`
	Difficulty       string    `json:"difficulty"`
	Price            string    `json:"price"`
	IsFree           bool      `json:"is_free"`
	DurationHours    int       `json:"duration_hours"`
	Language         string    `json:"language"`
	WhatYouWillLearn string    `json:"what_you_will_learn"`
	Requirements     string    `json:"requirements"`
	Modules          []Module  `json:"modules"`
	Reviews          []Review  `json:"reviews"`
	TotalEnrollments int       `json:"total_enrollments"`
	AverageRating    *float64  `json:"average_rating"`
	IsEnrolled       bool      `json:"is_enrolled"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type Enrollment struct {
	ID                 int64      `json:"id"`
	Course             Course     `json:"course"`
	StudentName        string     `json:"student_name"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
	Completed          bool       `json:"completed"`
	CompletedAt        *time.Time `json:"completed_at"`
	ProgressPercentage float64    `json:"progress_percentage"`
	LastAccessed       time.Time  `json:"last_accessed"`
}

// LessonProgressRequest fields left nil keep their stored value.
type LessonProgressRequest struct {
	Completed           *bool `json:"completed,omitempty"`
	TimeSpentSeconds    *int  `json:"time_spent_seconds,omitempty" validate:"omitempty,min=0"`
	LastPositionSeconds *int  `json:"last_position_seconds,omitempty" validate:"omitempty,min=0"`
}

type LessonProgress struct {
	ID                  int64      `json:"id"`
	Lesson              int64      `json:"lesson"`
	LessonTitle         string     `json:"lesson_title"`
	Completed           bool       `json:"completed"`
	CompletedAt         *time.Time `json:"completed_at"`
	TimeSpentSeconds    int        `json:"time_spent_seconds"`
	LastPositionSeconds int        `json:"last_position_seconds"`
}

type LessonStatus struct {
	LessonID            int64  `json:"lesson_id"`
	LessonTitle         string `json:"lesson_title"`
	Completed           bool   `json:"completed"`
	TimeSpentSeconds    int    `json:"time_spent_seconds"`
	LastPositionSeconds int    `json:"last_position_seconds"`
}

type ModuleProgress struct {
	ModuleID    int64          `json:"module_id"`
	ModuleTitle string         `json:"module_title"`
	Lessons     []LessonStatus `json:"lessons"`
}

type CourseProgress struct {
	Enrollment Enrollment       `json:"enrollment"`
	Progress   []ModuleProgress `json:"progress"`
}
