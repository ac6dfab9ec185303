package apiclient

import (
	"context"
	"fmt"

	"github.com/learnsphere-dev/learnsphere/shared/api"
)

func (c *Client) CourseForums(ctx context.Context, courseID int64, token string) ([]api.Forum, error) {
	return fetchList[api.Forum](ctx, c, fmt.Sprintf("/collaboration/courses/%d/forums/", courseID), token)
}

// CreateForum fills req.Course from courseID when unset.
func (c *Client) CreateForum(ctx context.Context, courseID int64, req api.ForumRequest, token string) (*api.Forum, error) {
	if req.Course == 0 {
		req.Course = courseID
	}
	return submit[api.Forum](ctx, c, fmt.Sprintf("/collaboration/courses/%d/forums/", courseID), req, token, "forum")
}

func (c *Client) ForumThreads(ctx context.Context, forumID int64, token string) ([]api.ForumThread, error) {
	return fetchList[api.ForumThread](ctx, c, fmt.Sprintf("/collaboration/forums/%d/threads/", forumID), token)
}

func (c *Client) CreateThread(ctx context.Context, forumID int64, req api.ThreadRequest, token string) (*api.ForumThread, error) {
	if req.Forum == 0 {
		req.Forum = forumID
	}
	return submit[api.ForumThread](ctx, c, fmt.Sprintf("/collaboration/forums/%d/threads/", forumID), req, token, "thread")
}

// Thread returns the thread with its posts. Every read bumps views_count.
func (c *Client) Thread(ctx context.Context, threadID int64, token string) (*api.ForumThread, error) {
	return fetchOne[api.ForumThread](ctx, c, fmt.Sprintf("/collaboration/threads/%d/", threadID), token)
}

func (c *Client) CreatePost(ctx context.Context, threadID int64, req api.PostRequest, token string) (*api.ForumPost, error) {
	if req.Thread == 0 {
		req.Thread = threadID
	}
	return submit[api.ForumPost](ctx, c, fmt.Sprintf("/collaboration/threads/%d/posts/", threadID), req, token, "post")
}

// ChatRoom is refused with 403 unless the user is enrolled or teaches the course.
func (c *Client) ChatRoom(ctx context.Context, courseID int64, token string) (*api.ChatRoom, error) {
	room, err := fetchOne[api.ChatRoom](ctx, c, fmt.Sprintf("/collaboration/courses/%d/chat/", courseID), token)
	if err != nil {
		return nil, err
	}
	if room.Messages == nil {
		room.Messages = []api.ChatMessage{}
	}
	return room, nil
}

func (c *Client) CreatePeerReview(ctx context.Context, req api.PeerReviewRequest, token string) (*api.PeerReview, error) {
	return submit[api.PeerReview](ctx, c, "/collaboration/peer-reviews/", req, token, "peer review")
}

func (c *Client) LiveSessions(ctx context.Context, courseID int64, token string) ([]api.LiveSession, error) {
	return fetchList[api.LiveSession](ctx, c, fmt.Sprintf("/collaboration/courses/%d/live-sessions/", courseID), token)
}

func (c *Client) CreateLiveSession(ctx context.Context, courseID int64, req api.LiveSessionRequest, token string) (*api.LiveSession, error) {
	if req.Course == 0 {
		req.Course = courseID
	}
	return submit[api.LiveSession](ctx, c, fmt.Sprintf("/collaboration/courses/%d/live-sessions/", courseID), req, token, "live session")
}
