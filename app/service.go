package app

import (
	"errors"

	"github.com/santiagovm/musiccloud/models"
	"gorm.io/gorm"
)

// RegisterUser creates a new user with estado=true. The email existence check
// is the fast path; the unique index on usuarios.email catches the race where
// two identical registrations pass the check concurrently.
func (app *Application) RegisterUser(nombre, email string) (*models.UserResponse, error) {
	exists, err := app.UserStore.IsExists("email = ?", email)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, models.ErrEmailAlreadyRegistered
	}

	user := &models.UserDBModel{
		Nombre: nombre,
		Email:  email,
		Estado: true,
	}

	if err := app.UserStore.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrEmailAlreadyRegistered
		}

		return nil, err
	}

	return models.NewUserResponse(user), nil
}

// SetUserEstado flips the active flag and returns the updated user, or
// ErrUserNotFound when the id does not exist.
func (app *Application) SetUserEstado(userID uint, estado bool) (*models.UserResponse, error) {
	rows, err := app.UserStore.UpdateEstado(userID, estado)
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, models.ErrUserNotFound
	}

	user, err := app.UserStore.GetByID(userID)
	if err != nil {
		return nil, err
	}

	return models.NewUserResponse(user), nil
}

// GetUserProfile returns the user merged with its full song list. Users with
// no library entries get an empty list.
func (app *Application) GetUserProfile(userID uint) (*models.ProfileResponse, error) {
	user, err := app.UserStore.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}

		return nil, err
	}

	songs, err := app.LibraryStore.SongsForUser(userID)
	if err != nil {
		return nil, err
	}

	musica := make([]models.SongResponse, 0, len(songs))
	for i := range songs {
		musica = append(musica, *models.NewSongResponse(&songs[i]))
	}

	return &models.ProfileResponse{
		UserResponse: *models.NewUserResponse(user),
		Musica:       musica,
	}, nil
}

// AddSongToLibrary links a song to a user's library. The operation is
// idempotent: an already-present pair, whether found by the pre-check or
// reported by the unique index after a lost race, is still a success. Callers
// are not told whether the entry was newly created.
func (app *Application) AddSongToLibrary(userID, songID uint) error {
	userExists, err := app.UserStore.IsExists("id = ?", userID)
	if err != nil {
		return err
	}

	if !userExists {
		return models.ErrUserNotFound
	}

	songExists, err := app.SongStore.IsExists("id = ?", songID)
	if err != nil {
		return err
	}

	if !songExists {
		return models.ErrSongNotFound
	}

	entryExists, err := app.LibraryStore.IsExists("usuario_id = ? AND musica_id = ?", userID, songID)
	if err != nil {
		return err
	}

	if entryExists {
		return nil
	}

	err = app.LibraryStore.Add(&models.LibraryDBModel{
		UsuarioID: userID,
		MusicaID:  songID,
	})
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	return nil
}

func (app *Application) CreateSong(titulo, artista string) (*models.SongResponse, error) {
	song := &models.SongDBModel{
		Titulo:  titulo,
		Artista: artista,
	}

	if err := app.SongStore.Create(song); err != nil {
		return nil, err
	}

	return models.NewSongResponse(song), nil
}

func (app *Application) ListSongs() ([]models.SongResponse, error) {
	songs, err := app.SongStore.ListAll()
	if err != nil {
		return nil, err
	}

	resp := make([]models.SongResponse, 0, len(songs))
	for i := range songs {
		resp = append(resp, *models.NewSongResponse(&songs[i]))
	}

	return resp, nil
}
