package store

import (
	"errors"

	"github.com/santiagovm/musiccloud/models"
	"gorm.io/gorm"
)

type LibraryStore interface {
	CreateTable() error
	Add(entry *models.LibraryDBModel) error
	GetByPair(userID, songID uint) (*models.LibraryDBModel, error)
	SongsForUser(userID uint) ([]models.SongDBModel, error)
	IsExists(whereQuery string, whereArgs ...interface{}) (bool, error)
	DB() *gorm.DB
}

type libraryStore struct {
	db *gorm.DB
}

func NewLibraryStore(db *gorm.DB) LibraryStore {
	return &libraryStore{
		db: db,
	}
}

func (ls *libraryStore) table() string {
	return "libreria_usuarios"
}

func (ls *libraryStore) DB() *gorm.DB {
	return ls.db
}

func (ls *libraryStore) CreateTable() error {
	return ls.db.AutoMigrate(models.LibraryDBModel{})
}

// Add inserts the pair as-is. When another request already inserted the same
// pair, the composite unique index makes this return gorm.ErrDuplicatedKey;
// callers treat that as "already present".
func (ls *libraryStore) Add(entry *models.LibraryDBModel) error {
	return ls.db.Table(ls.table()).Create(entry).Error
}

func (ls *libraryStore) GetByPair(userID, songID uint) (*models.LibraryDBModel, error) {
	var entry models.LibraryDBModel
	if err := ls.db.Table(ls.table()).Where("usuario_id = ? AND musica_id = ?", userID, songID).First(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// SongsForUser joins libreria_usuarios against musica and returns the user's
// songs ordered by song id ascending. An unknown user simply yields an empty
// slice.
func (ls *libraryStore) SongsForUser(userID uint) ([]models.SongDBModel, error) {
	var songs []models.SongDBModel

	err := ls.db.Table("musica").
		Select("musica.id, musica.titulo, musica.artista").
		Joins("JOIN libreria_usuarios ON libreria_usuarios.musica_id = musica.id").
		Where("libreria_usuarios.usuario_id = ?", userID).
		Order("musica.id").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}

	return songs, nil
}

func (ls *libraryStore) IsExists(whereQuery string, whereArgs ...interface{}) (bool, error) {

	type Res struct {
		IsExists bool
	}

	var res Res

	if err := ls.db.Table(ls.table()).Select("1 = 1 AS is_exists").Where(whereQuery, whereArgs...).Find(&res).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return res.IsExists, nil
}
