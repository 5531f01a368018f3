package dto

type ReqPlaylist struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type ReqUpdatePlaylist struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
