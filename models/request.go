package models

type CreateUserRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// Estado is a pointer so a missing field can be told apart from false.
type UpdateEstadoRequest struct {
	Estado *bool `json:"estado"`
}

type AddMusicaRequest struct {
	MusicaID uint `json:"musica_id"`
}

type CreateSongRequest struct {
	Titulo  string `json:"titulo"`
	Artista string `json:"artista"`
}
