package api

import "github.com/openforum-dev/forumapi/shared/domain"

// Request DTOs
// Fields are plain strings: a missing field decodes to "" and is rejected
// by the domain constructor, a field of another JSON type fails decoding.

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Response DTOs

type AddedUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
