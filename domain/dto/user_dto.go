package dto

// ResLogin carries the issued token pair alongside the public user profile.
type ResLogin struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         interface{} `json:"user"`
}

type ReqRefreshToken struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ReqChangePassword struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ReqUpdateAccount struct {
	FullName   *string `json:"fullName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
}
