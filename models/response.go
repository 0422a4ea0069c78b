package models

type UserResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Estado bool   `json:"estado"`
}

type SongResponse struct {
	ID      uint   `json:"id"`
	Titulo  string `json:"titulo"`
	Artista string `json:"artista"`
}

// ProfileResponse is a user merged with its full song list. Musica is always
// present, an empty array when the user has no library entries.
type ProfileResponse struct {
	UserResponse
	Musica []SongResponse `json:"musica"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewUserResponse(user *UserDBModel) *UserResponse {
	return &UserResponse{
		ID:     user.ID,
		Nombre: user.Nombre,
		Email:  user.Email,
		Estado: user.Estado,
	}
}

func NewSongResponse(song *SongDBModel) *SongResponse {
	return &SongResponse{
		ID:      song.ID,
		Titulo:  song.Titulo,
		Artista: song.Artista,
	}
}
