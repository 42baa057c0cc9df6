package domain

type RegisterUser struct {
	Username Username `json:"username" validate:"required,max=50,username"`
	Password Password `json:"password" validate:"required"`
	Fullname string   `json:"fullname" validate:"required"`
}

func NewRegisterUser(username Username, password Password, fullname string) (RegisterUser, error) {
	u := RegisterUser{Username: username, Password: password, Fullname: fullname}
	switch failedTag(u) {
	case "":
		return u, nil
	case "max":
		return RegisterUser{}, ErrRegisterUserUsernameLimit
	case "username":
		return RegisterUser{}, ErrRegisterUserUsernameRestricted
	default:
		return RegisterUser{}, ErrRegisterUserMissingProperty
	}
}

type RegisteredUser struct {
	Id       UserId   `json:"id" validate:"required"`
	Username Username `json:"username" validate:"required"`
	Fullname string   `json:"fullname" validate:"required"`
}

func NewRegisteredUser(id UserId, username Username, fullname string) (RegisteredUser, error) {
	u := RegisteredUser{Id: id, Username: username, Fullname: fullname}
	if err := check(u, ErrRegisteredUserMissingProperty); err != nil {
		return RegisteredUser{}, err
	}
	return u, nil
}
