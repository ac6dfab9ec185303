package apiclient

import (
	"context"
	"fmt"

	"github.com/learnsphere-dev/learnsphere/shared/api"
)

// Recommendations falls back to popular courses server-side when there is not
// enough history for personal ones.
func (c *Client) Recommendations(ctx context.Context, token string) ([]api.Course, error) {
	return fetchList[api.Course](ctx, c, "/analytics/recommendations/", token)
}

func (c *Client) StudentDashboard(ctx context.Context, token string) (*api.StudentDashboard, error) {
	var dashboard api.StudentDashboard
	if err := c.fetch(ctx, "/analytics/student/dashboard/", token, &dashboard); err != nil {
		return nil, err
	}
	if dashboard.RecentActivity == nil {
		dashboard.RecentActivity = []api.RecentActivity{}
	}
	return &dashboard, nil
}

// LearningPath orders the course's lessons for the user.
func (c *Client) LearningPath(ctx context.Context, courseID int64, token string) ([]api.Lesson, error) {
	return fetchList[api.Lesson](ctx, c, fmt.Sprintf("/analytics/courses/%d/learning-path/", courseID), token)
}

// CourseEngagement is the user's own engagement record; the server creates it
// on first read.
func (c *Client) CourseEngagement(ctx context.Context, courseID int64, token string) (*api.StudentEngagement, error) {
	return fetchOne[api.StudentEngagement](ctx, c, fmt.Sprintf("/analytics/courses/%d/engagement/", courseID), token)
}

// CourseAnalytics answers 404 for courses the token's instructor does not own.
func (c *Client) CourseAnalytics(ctx context.Context, courseID int64, token string) (*api.CourseAnalytics, error) {
	return fetchOne[api.CourseAnalytics](ctx, c, fmt.Sprintf("/analytics/courses/%d/analytics/", courseID), token)
}

func (c *Client) InstructorDashboard(ctx context.Context, token string) ([]api.InstructorCourseStats, error) {
	return fetchList[api.InstructorCourseStats](ctx, c, "/analytics/instructor/dashboard/", token)
}
