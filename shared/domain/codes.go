package domain

// CodeError is a failure identified by a stable code like
// "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY". The errors package translates
// known codes into client errors.
type CodeError struct {
	Code string
}

func (e *CodeError) Error() string {
	return e.Code
}

func newCode(code string) *CodeError {
	return &CodeError{Code: code}
}

var (
	ErrRegisterUserMissingProperty    = newCode("REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrRegisterUserDataType           = newCode("REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrRegisterUserUsernameLimit      = newCode("REGISTER_USER.USERNAME_LIMIT_CHAR")
	ErrRegisterUserUsernameRestricted = newCode("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	ErrRegisteredUserMissingProperty  = newCode("REGISTERED_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrUserLoginMissingProperty       = newCode("USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrUserLoginDataType              = newCode("USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrNewAuthMissingProperty         = newCode("NEW_AUTH.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrRefreshAuthMissingToken        = newCode("REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN")
	ErrRefreshAuthDataType            = newCode("REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrDeleteAuthMissingToken         = newCode("DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN")
	ErrDeleteAuthDataType             = newCode("DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAccessTokenMissing             = newCode("ACCESS_TOKEN_AUTHENTICATOR.NOT_CONTAIN_ACCESS_TOKEN")
	ErrAccessTokenScheme              = newCode("ACCESS_TOKEN_AUTHENTICATOR.INVALID_TOKEN_SCHEME")
	ErrAddThreadMissingProperty       = newCode("ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddThreadDataType              = newCode("ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddedThreadMissingProperty     = newCode("NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrThreadMissingProperty          = newCode("THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddCommentMissingProperty      = newCode("ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddCommentDataType             = newCode("ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddedCommentMissingProperty    = newCode("NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentMissingProperty         = newCode("COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrExistingCommentMissingProperty = newCode("EXISTING_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrDeleteCommentNotAuthorized     = newCode("DELETE_COMMENT_USE_CASE.USER_NOT_AUTHORIZED")
	ErrAddReplyMissingProperty        = newCode("ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddReplyDataType               = newCode("ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddedReplyMissingProperty      = newCode("NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrReplyMissingProperty           = newCode("REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrExistingReplyMissingProperty   = newCode("EXISTING_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrDeleteReplyNotAuthorized       = newCode("DELETE_REPLY_USE_CASE.USER_NOT_AUTHORIZED")
	ErrLikeMissingProperty            = newCode("LIKE.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrLikeParse                      = newCode("LIKE.FAILED_TO_PARSE_DATA")
	ErrExistingLikeMissingProperty    = newCode("EXISTING_LIKE.NOT_CONTAIN_NEEDED_PROPERTY")
)
