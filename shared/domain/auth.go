package domain

type UserLogin struct {
	Username Username `validate:"required"`
	Password Password `validate:"required"`
}

func NewUserLogin(username Username, password Password) (UserLogin, error) {
	l := UserLogin{Username: username, Password: password}
	if err := check(l, ErrUserLoginMissingProperty); err != nil {
		return UserLogin{}, err
	}
	return l, nil
}

// AuthTokens is the token pair issued on login.
type AuthTokens struct {
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func NewAuthTokens(accessToken, refreshToken string) (AuthTokens, error) {
	a := AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}
	if err := check(a, ErrNewAuthMissingProperty); err != nil {
		return AuthTokens{}, err
	}
	return a, nil
}

// Credentials is the identity carried by an access token.
type Credentials struct {
	Username Username `json:"username"`
	Id       UserId   `json:"id"`
}
