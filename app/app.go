package app

import (
	"github.com/charmbracelet/log"
	"github.com/santiagovm/musiccloud/store"
)

type Application struct {
	Logger *log.Logger

	UserStore    store.UserStore
	SongStore    store.SongStore
	LibraryStore store.LibraryStore
}

func NewApplication(logger *log.Logger) (*Application, error) {
	db, err := createSQLDB()
	if err != nil {
		return nil, err
	}

	app := &Application{
		Logger: logger,

		UserStore:    store.NewUserStore(db),
		SongStore:    store.NewSongStore(db),
		LibraryStore: store.NewLibraryStore(db),
	}

	if err := app.UserStore.CreateTable(); err != nil {
		return nil, err
	}

	if err := app.SongStore.CreateTable(); err != nil {
		return nil, err
	}

	// libreria_usuarios last, its foreign keys need the other two tables
	if err := app.LibraryStore.CreateTable(); err != nil {
		return nil, err
	}

	return app, nil
}
