package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnsphere-dev/learnsphere/shared/api"
	internal_errors "github.com/learnsphere-dev/learnsphere/shared/errors"
)

// === Course Methods ===

func (c *Client) Categories(ctx context.Context, token string) ([]api.Category, error) {
	return fetchList[api.Category](ctx, c, "/courses/categories/", token)
}

func (c *Client) Courses(ctx context.Context, token string) ([]api.Course, error) {
	return fetchList[api.Course](ctx, c, "/courses/", token)
}

func (c *Client) Course(ctx context.Context, slug, token string) (*api.CourseDetail, error) {
	var course api.CourseDetail
	err := c.fetch(ctx, coursePath(slug, ""), token, &course)
	if internal_errors.StatusCode(err) == http.StatusNotFound {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("course %q not found", slug), StatusCode: http.StatusNotFound,
		}
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) CourseReviews(ctx context.Context, slug, token string) ([]api.Review, error) {
	return fetchList[api.Review](ctx, c, coursePath(slug, "reviews/"), token)
}

func (c *Client) AddReview(ctx context.Context, slug string, review api.ReviewRequest, token string) (*api.Review, error) {
	resp, err := c.call(ctx, http.MethodPost, coursePath(slug, "reviews/"), review, token)
	if err != nil {
		return nil, err
	}
	var created api.Review
	if err := resp.Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode review response: %w", err)
	}
	return &created, nil
}

// Enroll enrolls the token's user. Paid courses answer 402.
func (c *Client) Enroll(ctx context.Context, slug, token string) (*api.Enrollment, error) {
	resp, err := c.call(ctx, http.MethodPost, coursePath(slug, "enroll/"), nil, token)
	if err != nil {
		return nil, err
	}
	var enrollment api.Enrollment
	if err := resp.Decode(&enrollment); err != nil {
		return nil, fmt.Errorf("failed to decode enrollment response: %w", err)
	}
	return &enrollment, nil
}

func (c *Client) MyEnrollments(ctx context.Context, token string) ([]api.Enrollment, error) {
	return fetchList[api.Enrollment](ctx, c, "/courses/student/enrollments/", token)
}

func (c *Client) UpdateLessonProgress(ctx context.Context, lessonID int64, req api.LessonProgressRequest, token string) (*api.LessonProgress, error) {
	path := fmt.Sprintf("/courses/student/lessons/%d/progress/", lessonID)
	resp, err := c.call(ctx, http.MethodPost, path, req, token)
	if err != nil {
		return nil, err
	}
	var progress api.LessonProgress
	if err := resp.Decode(&progress); err != nil {
		return nil, fmt.Errorf("failed to decode lesson progress: %w", err)
	}
	return &progress, nil
}

func (c *Client) MyCourseProgress(ctx context.Context, slug, token string) (*api.CourseProgress, error) {
	var progress api.CourseProgress
	path := "/courses/student/" + PathEscape(slug) + "/progress/"
	if err := c.fetch(ctx, path, token, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func coursePath(slug, suffix string) string {
	return "/courses/" + PathEscape(slug) + "/" + suffix
}
