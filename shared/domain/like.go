package domain

import "strconv"

// Like is the number of likes on one comment.
type Like struct {
	Count int
}

// NewLike parses the decimal count returned by the database.
func NewLike(count string) (Like, error) {
	if count == "" {
		return Like{}, ErrLikeMissingProperty
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return Like{}, ErrLikeParse
	}
	return Like{Count: n}, nil
}

// ExistingLike identifies one user's like on one comment.
type ExistingLike struct {
	Id LikeId `validate:"required"`
}

func NewExistingLike(id LikeId) (ExistingLike, error) {
	e := ExistingLike{Id: id}
	if err := check(e, ErrExistingLikeMissingProperty); err != nil {
		return ExistingLike{}, err
	}
	return e, nil
}
