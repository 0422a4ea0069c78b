package app

import "github.com/santiagovm/musiccloud/models"

var seedUsers = []models.UserDBModel{
	{Nombre: "Juan Pérez", Email: "juan@example.com", Estado: true},
	{Nombre: "María García", Email: "maria@example.com", Estado: true},
	{Nombre: "Carlos López", Email: "carlos@example.com", Estado: false},
}

var seedSongs = []models.SongDBModel{
	{Titulo: "Bohemian Rhapsody", Artista: "Queen"},
	{Titulo: "Imagine", Artista: "John Lennon"},
	{Titulo: "Hotel California", Artista: "Eagles"},
	{Titulo: "Stairway to Heaven", Artista: "Led Zeppelin"},
	{Titulo: "Billie Jean", Artista: "Michael Jackson"},
	{Titulo: "Like a Rolling Stone", Artista: "Bob Dylan"},
	{Titulo: "Smells Like Teen Spirit", Artista: "Nirvana"},
	{Titulo: "Yesterday", Artista: "The Beatles"},
	{Titulo: "Purple Haze", Artista: "Jimi Hendrix"},
	{Titulo: "What's Going On", Artista: "Marvin Gaye"},
}

// user index -> song indexes within the batches above
var seedLibrary = map[int][]int{
	0: {0, 1, 2},
	1: {3, 4},
	2: {5},
}

// Seed loads the sample dataset. It refuses to touch a database that already
// has songs, so running it twice changes nothing.
func (app *Application) Seed() error {
	exists, err := app.SongStore.IsExists("1 = 1")
	if err != nil {
		return err
	}

	if exists {
		app.Logger.Info("database already has data, nothing to seed")
		return nil
	}

	users := make([]models.UserDBModel, len(seedUsers))
	copy(users, seedUsers)

	for i := range users {
		if err := app.UserStore.Create(&users[i]); err != nil {
			return err
		}
	}

	songs := make([]models.SongDBModel, len(seedSongs))
	copy(songs, seedSongs)

	if err := app.SongStore.CreateInBatches(songs); err != nil {
		return err
	}

	for ui, sis := range seedLibrary {
		for _, si := range sis {
			if err := app.AddSongToLibrary(users[ui].ID, songs[si].ID); err != nil {
				return err
			}
		}
	}

	app.Logger.Info("sample data loaded",
		"users", len(users),
		"songs", len(songs),
	)

	return nil
}
