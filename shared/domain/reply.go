package domain

import "time"

const DeletedReplyContent = "**balasan telah dihapus**"

type AddReply struct {
	Content string `json:"content" validate:"required"`
}

func NewAddReply(content string) (AddReply, error) {
	a := AddReply{Content: content}
	if err := check(a, ErrAddReplyMissingProperty); err != nil {
		return AddReply{}, err
	}
	return a, nil
}

type AddedReply struct {
	Id      ReplyId `json:"id" validate:"required"`
	Content string  `json:"content" validate:"required"`
	Owner   UserId  `json:"owner" validate:"required"`
}

func NewAddedReply(id ReplyId, content string, owner UserId) (AddedReply, error) {
	a := AddedReply{Id: id, Content: content, Owner: owner}
	if err := check(a, ErrAddedReplyMissingProperty); err != nil {
		return AddedReply{}, err
	}
	return a, nil
}

type Reply struct {
	Id       ReplyId   `json:"id" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Username Username  `json:"username" validate:"required"`
	IsDelete bool      `json:"-"`
}

func NewReply(r Reply) (Reply, error) {
	if err := check(r, ErrReplyMissingProperty); err != nil {
		return Reply{}, err
	}
	if r.IsDelete {
		r.Content = DeletedReplyContent
	}
	return r, nil
}

type ExistingReply struct {
	Id    ReplyId `validate:"required"`
	Owner UserId  `validate:"required"`
}

func NewExistingReply(id ReplyId, owner UserId) (ExistingReply, error) {
	e := ExistingReply{Id: id, Owner: owner}
	if err := check(e, ErrExistingReplyMissingProperty); err != nil {
		return ExistingReply{}, err
	}
	return e, nil
}
