package domain

type (
	UserId    = string
	Username  = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string

	Password = string
)

// DeletionPolicy tells storage how an entity disappears.
type DeletionPolicy int

const (
	// SoftDelete flips is_delete and keeps the row; readers mask the content.
	SoftDelete DeletionPolicy = iota + 1
	// HardDelete removes the row.
	HardDelete
)

var (
	CommentDeletion     = SoftDelete
	ReplyDeletion       = SoftDelete
	CommentLikeDeletion = HardDelete
)

func (p DeletionPolicy) String() string {
	switch p {
	case SoftDelete:
		return "soft"
	case HardDelete:
		return "hard"
	default:
		return "unknown"
	}
}
