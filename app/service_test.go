package app

import (
	"errors"
	"testing"

	"github.com/santiagovm/musiccloud/models"
	"gorm.io/gorm"
)

type mockUserStore struct {
	existsResp bool
	existsErr  error
	user       *models.UserDBModel
	getErr     error
	rows       int64
	updateErr  error
	createErr  error
	created    []*models.UserDBModel
}

func (m *mockUserStore) CreateTable() error { return nil }
func (m *mockUserStore) DB() *gorm.DB       { return nil }

func (m *mockUserStore) Create(user *models.UserDBModel) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = uint(len(m.created) + 1)
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserStore) GetByID(id uint) (*models.UserDBModel, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUserStore) GetByEmail(email string) (*models.UserDBModel, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUserStore) UpdateEstado(id uint, estado bool) (int64, error) {
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	if m.user != nil {
		m.user.Estado = estado
	}
	return m.rows, nil
}

func (m *mockUserStore) IsExists(whereQuery string, whereArgs ...interface{}) (bool, error) {
	return m.existsResp, m.existsErr
}

type mockSongStore struct {
	existsResp bool
	existsErr  error
	song       *models.SongDBModel
	getErr     error
	songs      []models.SongDBModel
	listErr    error
	createErr  error
	created    []*models.SongDBModel
}

func (m *mockSongStore) CreateTable() error { return nil }
func (m *mockSongStore) DB() *gorm.DB       { return nil }

func (m *mockSongStore) Create(song *models.SongDBModel) error {
	if m.createErr != nil {
		return m.createErr
	}
	song.ID = uint(len(m.created) + 1)
	m.created = append(m.created, song)
	return nil
}

func (m *mockSongStore) CreateInBatches(songs []models.SongDBModel) error {
	return m.createErr
}

func (m *mockSongStore) GetByID(id uint) (*models.SongDBModel, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.song, nil
}

func (m *mockSongStore) ListAll() ([]models.SongDBModel, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.songs, nil
}

func (m *mockSongStore) IsExists(whereQuery string, whereArgs ...interface{}) (bool, error) {
	return m.existsResp, m.existsErr
}

type mockLibraryStore struct {
	existsResp bool
	existsErr  error
	addErr     error
	added      []*models.LibraryDBModel
	songs      []models.SongDBModel
	songsErr   error
}

func (m *mockLibraryStore) CreateTable() error { return nil }
func (m *mockLibraryStore) DB() *gorm.DB       { return nil }

func (m *mockLibraryStore) Add(entry *models.LibraryDBModel) error {
	if m.addErr != nil {
		return m.addErr
	}
	entry.ID = uint(len(m.added) + 1)
	m.added = append(m.added, entry)
	return nil
}

func (m *mockLibraryStore) GetByPair(userID, songID uint) (*models.LibraryDBModel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLibraryStore) SongsForUser(userID uint) ([]models.SongDBModel, error) {
	if m.songsErr != nil {
		return nil, m.songsErr
	}
	return m.songs, nil
}

func (m *mockLibraryStore) IsExists(whereQuery string, whereArgs ...interface{}) (bool, error) {
	return m.existsResp, m.existsErr
}

func TestRegisterUserSuccess(t *testing.T) {
	users := &mockUserStore{}
	application := &Application{UserStore: users}

	user, err := application.RegisterUser("Juan", "juan@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID != 1 || user.Nombre != "Juan" || user.Email != "juan@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if !user.Estado {
		t.Fatal("new users must start with estado = true")
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	users := &mockUserStore{existsResp: true}
	application := &Application{UserStore: users}

	if _, err := application.RegisterUser("Juan", "juan@x.com"); !errors.Is(err, models.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	if len(users.created) != 0 {
		t.Fatal("no user should be created for a duplicate email")
	}
}

func TestRegisterUserLostRace(t *testing.T) {
	// existence check passes but the unique index rejects the insert
	users := &mockUserStore{createErr: gorm.ErrDuplicatedKey}
	application := &Application{UserStore: users}

	if _, err := application.RegisterUser("Juan", "juan@x.com"); !errors.Is(err, models.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestSetUserEstado(t *testing.T) {
	users := &mockUserStore{
		rows: 1,
		user: &models.UserDBModel{ID: 1, Nombre: "Juan", Email: "juan@x.com", Estado: true},
	}
	application := &Application{UserStore: users}

	user, err := application.SetUserEstado(1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Estado {
		t.Fatal("expected estado = false after update")
	}
}

func TestSetUserEstadoUnknownID(t *testing.T) {
	users := &mockUserStore{rows: 0}
	application := &Application{UserStore: users}

	if _, err := application.SetUserEstado(99, true); !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserProfileUnknownID(t *testing.T) {
	users := &mockUserStore{getErr: gorm.ErrRecordNotFound}
	application := &Application{UserStore: users, LibraryStore: &mockLibraryStore{}}

	if _, err := application.GetUserProfile(99); !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserProfileEmptyLibrary(t *testing.T) {
	users := &mockUserStore{user: &models.UserDBModel{ID: 1, Nombre: "Juan", Email: "juan@x.com", Estado: true}}
	application := &Application{UserStore: users, LibraryStore: &mockLibraryStore{}}

	profile, err := application.GetUserProfile(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Musica == nil {
		t.Fatal("musica must be an empty list, not nil")
	}

	if len(profile.Musica) != 0 {
		t.Fatalf("expected empty musica, got %+v", profile.Musica)
	}
}

func TestGetUserProfileWithSongs(t *testing.T) {
	users := &mockUserStore{user: &models.UserDBModel{ID: 1, Nombre: "Juan", Email: "juan@x.com", Estado: true}}
	library := &mockLibraryStore{songs: []models.SongDBModel{
		{ID: 1, Titulo: "Imagine", Artista: "John Lennon"},
		{ID: 2, Titulo: "Yesterday", Artista: "The Beatles"},
	}}
	application := &Application{UserStore: users, LibraryStore: library}

	profile, err := application.GetUserProfile(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(profile.Musica) != 2 || profile.Musica[0].Titulo != "Imagine" {
		t.Fatalf("unexpected musica: %+v", profile.Musica)
	}
}

func TestAddSongToLibraryUnknownUser(t *testing.T) {
	application := &Application{
		UserStore:    &mockUserStore{existsResp: false},
		SongStore:    &mockSongStore{existsResp: true},
		LibraryStore: &mockLibraryStore{},
	}

	if err := application.AddSongToLibrary(99, 1); !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddSongToLibraryUnknownSong(t *testing.T) {
	application := &Application{
		UserStore:    &mockUserStore{existsResp: true},
		SongStore:    &mockSongStore{existsResp: false},
		LibraryStore: &mockLibraryStore{},
	}

	if err := application.AddSongToLibrary(1, 99); !errors.Is(err, models.ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound, got %v", err)
	}
}

func TestAddSongToLibraryInserts(t *testing.T) {
	library := &mockLibraryStore{}
	application := &Application{
		UserStore:    &mockUserStore{existsResp: true},
		SongStore:    &mockSongStore{existsResp: true},
		LibraryStore: library,
	}

	if err := application.AddSongToLibrary(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(library.added) != 1 {
		t.Fatalf("expected 1 library entry, got %d", len(library.added))
	}

	if library.added[0].UsuarioID != 1 || library.added[0].MusicaID != 2 {
		t.Fatalf("unexpected entry: %+v", library.added[0])
	}
}

func TestAddSongToLibraryAlreadyPresent(t *testing.T) {
	library := &mockLibraryStore{existsResp: true}
	application := &Application{
		UserStore:    &mockUserStore{existsResp: true},
		SongStore:    &mockSongStore{existsResp: true},
		LibraryStore: library,
	}

	if err := application.AddSongToLibrary(1, 2); err != nil {
		t.Fatalf("adding an existing pair must succeed, got %v", err)
	}

	if len(library.added) != 0 {
		t.Fatal("no new entry should be inserted for an existing pair")
	}
}

func TestAddSongToLibraryLostRace(t *testing.T) {
	// pair check passes but the composite unique index rejects the insert
	library := &mockLibraryStore{addErr: gorm.ErrDuplicatedKey}
	application := &Application{
		UserStore:    &mockUserStore{existsResp: true},
		SongStore:    &mockSongStore{existsResp: true},
		LibraryStore: library,
	}

	if err := application.AddSongToLibrary(1, 2); err != nil {
		t.Fatalf("a lost insert race must still succeed, got %v", err)
	}
}

func TestCreateSong(t *testing.T) {
	songs := &mockSongStore{}
	application := &Application{SongStore: songs}

	song, err := application.CreateSong("Imagine", "John Lennon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if song.ID != 1 || song.Titulo != "Imagine" || song.Artista != "John Lennon" {
		t.Fatalf("unexpected song: %+v", song)
	}
}

func TestListSongsEmpty(t *testing.T) {
	application := &Application{SongStore: &mockSongStore{}}

	songs, err := application.ListSongs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if songs == nil || len(songs) != 0 {
		t.Fatalf("expected empty list, got %+v", songs)
	}
}
