package store

import (
	"errors"

	"github.com/santiagovm/musiccloud/models"
	"gorm.io/gorm"
)

type UserStore interface {
	CreateTable() error
	Create(user *models.UserDBModel) error
	GetByID(id uint) (*models.UserDBModel, error)
	GetByEmail(email string) (*models.UserDBModel, error)
	UpdateEstado(id uint, estado bool) (int64, error)
	IsExists(whereQuery string, whereArgs ...interface{}) (bool, error)
	DB() *gorm.DB
}

type userStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{
		db: db,
	}
}

func (us *userStore) table() string {
	return "usuarios"
}

func (us *userStore) DB() *gorm.DB {
	return us.db
}

func (us *userStore) CreateTable() error {
	return us.db.AutoMigrate(models.UserDBModel{})
}

// Create inserts the record and fills in the assigned id. A duplicate email
// surfaces as gorm.ErrDuplicatedKey via the unique index on the column.
func (us *userStore) Create(user *models.UserDBModel) error {
	return us.db.Table(us.table()).Create(user).Error
}

func (us *userStore) GetByID(id uint) (*models.UserDBModel, error) {
	var user models.UserDBModel
	if err := us.db.Table(us.table()).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (us *userStore) GetByEmail(email string) (*models.UserDBModel, error) {
	var user models.UserDBModel
	if err := us.db.Table(us.table()).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateEstado reports the number of rows touched, zero when the id is
// unknown.
func (us *userStore) UpdateEstado(id uint, estado bool) (int64, error) {
	res := us.db.Table(us.table()).Where("id = ?", id).Update("estado", estado)
	return res.RowsAffected, res.Error
}

func (us *userStore) IsExists(whereQuery string, whereArgs ...interface{}) (bool, error) {

	type Res struct {
		IsExists bool
	}

	var res Res

	if err := us.db.Table(us.table()).Select("1 = 1 AS is_exists").Where(whereQuery, whereArgs...).Find(&res).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return res.IsExists, nil
}
