package api

import "github.com/openforum-dev/forumapi/shared/domain"

// Request DTOs

type AddThreadRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

type AddReplyRequest struct {
	Content string `json:"content"`
}

// Response DTOs

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
