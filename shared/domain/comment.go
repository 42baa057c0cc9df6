package domain

import "time"

const DeletedCommentContent = "**komentar telah dihapus**"

type AddComment struct {
	Content string `json:"content" validate:"required"`
}

func NewAddComment(content string) (AddComment, error) {
	a := AddComment{Content: content}
	if err := check(a, ErrAddCommentMissingProperty); err != nil {
		return AddComment{}, err
	}
	return a, nil
}

type AddedComment struct {
	Id      CommentId `json:"id" validate:"required"`
	Content string    `json:"content" validate:"required"`
	Owner   UserId    `json:"owner" validate:"required"`
}

func NewAddedComment(id CommentId, content string, owner UserId) (AddedComment, error) {
	a := AddedComment{Id: id, Content: content, Owner: owner}
	if err := check(a, ErrAddedCommentMissingProperty); err != nil {
		return AddedComment{}, err
	}
	return a, nil
}

// Comment is the read view of a comment. Content of a deleted comment is
// replaced by DeletedCommentContent on construction.
type Comment struct {
	Id       CommentId `json:"id" validate:"required"`
	Username Username  `json:"username" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	IsDelete bool      `json:"-"`
}

func NewComment(c Comment) (Comment, error) {
	if err := check(c, ErrCommentMissingProperty); err != nil {
		return Comment{}, err
	}
	if c.IsDelete {
		c.Content = DeletedCommentContent
	}
	return c, nil
}

// ExistingComment is the owner lookup used before mutating a comment.
type ExistingComment struct {
	Id    CommentId `validate:"required"`
	Owner UserId    `validate:"required"`
}

func NewExistingComment(id CommentId, owner UserId) (ExistingComment, error) {
	e := ExistingComment{Id: id, Owner: owner}
	if err := check(e, ErrExistingCommentMissingProperty); err != nil {
		return ExistingComment{}, err
	}
	return e, nil
}
