package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnsphere-dev/learnsphere/shared/api"
)

func (c *Client) CourseQuizzes(ctx context.Context, courseID int64, token string) ([]api.Quiz, error) {
	return fetchList[api.Quiz](ctx, c, fmt.Sprintf("/assessments/courses/%d/quizzes/", courseID), token)
}

func (c *Client) Quiz(ctx context.Context, quizID int64, token string) (*api.Quiz, error) {
	var quiz api.Quiz
	if err := c.fetch(ctx, fmt.Sprintf("/assessments/quizzes/%d/", quizID), token, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// StartQuiz opens a new attempt. The server refuses once max_attempts is used up.
func (c *Client) StartQuiz(ctx context.Context, quizID int64, token string) (*api.QuizSession, error) {
	var session api.QuizSession
	if err := c.fetch(ctx, fmt.Sprintf("/assessments/quizzes/%d/take/", quizID), token, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) SubmitQuiz(ctx context.Context, quizID int64, submission api.QuizSubmission, token string) (*api.QuizAttempt, error) {
	resp, err := c.call(ctx, http.MethodPost, fmt.Sprintf("/assessments/quizzes/%d/take/", quizID), submission, token)
	if err != nil {
		return nil, err
	}
	var attempt api.QuizAttempt
	if err := resp.Decode(&attempt); err != nil {
		return nil, fmt.Errorf("failed to decode quiz attempt: %w", err)
	}
	return &attempt, nil
}

func (c *Client) MyQuizAttempts(ctx context.Context, token string) ([]api.QuizAttempt, error) {
	return fetchList[api.QuizAttempt](ctx, c, "/assessments/my-attempts/", token)
}

func (c *Client) MyAssignments(ctx context.Context, token string) ([]api.Assignment, error) {
	return fetchList[api.Assignment](ctx, c, "/assessments/my-assignments/", token)
}

// CourseAssignments lists a course's assignments for its instructor.
func (c *Client) CourseAssignments(ctx context.Context, courseID int64, token string) ([]api.Assignment, error) {
	return fetchList[api.Assignment](ctx, c, fmt.Sprintf("/assessments/courses/%d/assignments/", courseID), token)
}

func (c *Client) Assignment(ctx context.Context, assignmentID int64, token string) (*api.Assignment, error) {
	return fetchOne[api.Assignment](ctx, c, fmt.Sprintf("/assessments/assignments/%d/", assignmentID), token)
}

// SubmitAssignment is accepted once per student and only while enrolled.
func (c *Client) SubmitAssignment(ctx context.Context, assignmentID int64, req api.AssignmentSubmissionRequest, token string) (*api.AssignmentSubmission, error) {
	if req.Assignment == 0 {
		req.Assignment = assignmentID
	}
	return submit[api.AssignmentSubmission](ctx, c, fmt.Sprintf("/assessments/assignments/%d/submit/", assignmentID), req, token, "assignment submission")
}

func (c *Client) GradeSubmission(ctx context.Context, submissionID int64, req api.GradeRequest, token string) (*api.AssignmentSubmission, error) {
	return submit[api.AssignmentSubmission](ctx, c, fmt.Sprintf("/assessments/submissions/%d/grade/", submissionID), req, token, "graded submission")
}
