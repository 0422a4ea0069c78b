package store

import (
	"errors"

	"github.com/santiagovm/musiccloud/models"
	"gorm.io/gorm"
)

type SongStore interface {
	CreateTable() error
	Create(song *models.SongDBModel) error
	CreateInBatches(songs []models.SongDBModel) error
	GetByID(id uint) (*models.SongDBModel, error)
	ListAll() ([]models.SongDBModel, error)
	IsExists(whereQuery string, whereArgs ...interface{}) (bool, error)
	DB() *gorm.DB
}

type songStore struct {
	db *gorm.DB
}

func NewSongStore(db *gorm.DB) SongStore {
	return &songStore{
		db: db,
	}
}

func (ss *songStore) table() string {
	return "musica"
}

func (ss *songStore) DB() *gorm.DB {
	return ss.db
}

func (ss *songStore) CreateTable() error {
	return ss.db.AutoMigrate(models.SongDBModel{})
}

func (ss *songStore) Create(song *models.SongDBModel) error {
	return ss.db.Table(ss.table()).Create(song).Error
}

func (ss *songStore) CreateInBatches(songs []models.SongDBModel) error {
	return ss.db.Table(ss.table()).CreateInBatches(songs, len(songs)).Error
}

func (ss *songStore) GetByID(id uint) (*models.SongDBModel, error) {
	var song models.SongDBModel
	if err := ss.db.Table(ss.table()).Where("id = ?", id).First(&song).Error; err != nil {
		return nil, err
	}

	return &song, nil
}

// ListAll returns every song ordered by id ascending, which matches insertion
// order.
func (ss *songStore) ListAll() ([]models.SongDBModel, error) {
	var songs []models.SongDBModel

	if err := ss.db.Table(ss.table()).Order("id").Find(&songs).Error; err != nil {
		return nil, err
	}

	return songs, nil
}

func (ss *songStore) IsExists(whereQuery string, whereArgs ...interface{}) (bool, error) {

	type Res struct {
		IsExists bool
	}

	var res Res

	if err := ss.db.Table(ss.table()).Select("1 = 1 AS is_exists").Where(whereQuery, whereArgs...).Find(&res).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return res.IsExists, nil
}
