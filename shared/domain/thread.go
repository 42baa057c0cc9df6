package domain

import "time"

// AddThread is a validated thread creation payload.
type AddThread struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

func NewAddThread(title, body string) (AddThread, error) {
	a := AddThread{Title: title, Body: body}
	if err := check(a, ErrAddThreadMissingProperty); err != nil {
		return AddThread{}, err
	}
	return a, nil
}

// AddedThread is returned right after a thread is inserted.
type AddedThread struct {
	Id    ThreadId `json:"id" validate:"required"`
	Title string   `json:"title" validate:"required"`
	Owner UserId   `json:"owner" validate:"required"`
}

func NewAddedThread(id ThreadId, title string, owner UserId) (AddedThread, error) {
	a := AddedThread{Id: id, Title: title, Owner: owner}
	if err := check(a, ErrAddedThreadMissingProperty); err != nil {
		return AddedThread{}, err
	}
	return a, nil
}

type Thread struct {
	Id       ThreadId  `json:"id" validate:"required"`
	Title    string    `json:"title" validate:"required"`
	Body     string    `json:"body" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Username Username  `json:"username" validate:"required"`
}

func NewThread(t Thread) (Thread, error) {
	if err := check(t, ErrThreadMissingProperty); err != nil {
		return Thread{}, err
	}
	return t, nil
}

// ThreadDetail is a thread together with everything shown under it.
type ThreadDetail struct {
	Thread
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	Comment
	Replies   []Reply `json:"replies"`
	LikeCount int     `json:"likeCount"`
}
