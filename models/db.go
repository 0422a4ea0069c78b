package models

// UserDBModel maps to the usuarios table. Users are never deleted.
type UserDBModel struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre string `gorm:"column:nombre;not null"`
	Email  string `gorm:"column:email;not null;uniqueIndex:idx_usuarios_email"`
	Estado bool   `gorm:"column:estado;not null"`
}

func (UserDBModel) TableName() string {
	return "usuarios"
}

// SongDBModel maps to the musica table. Songs are immutable after creation.
type SongDBModel struct {
	ID      uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Titulo  string `gorm:"column:titulo;not null"`
	Artista string `gorm:"column:artista;not null"`
}

func (SongDBModel) TableName() string {
	return "musica"
}

// LibraryDBModel maps to the libreria_usuarios table, linking one user to one
// song. The composite unique index is the authoritative guard against
// duplicate (usuario_id, musica_id) pairs under concurrent inserts.
type LibraryDBModel struct {
	ID        uint `gorm:"column:id;primaryKey;autoIncrement"`
	UsuarioID uint `gorm:"column:usuario_id;not null;uniqueIndex:idx_libreria_usuario_musica"`
	MusicaID  uint `gorm:"column:musica_id;not null;uniqueIndex:idx_libreria_usuario_musica"`

	Usuario *UserDBModel `gorm:"foreignKey:UsuarioID;references:ID"`
	Musica  *SongDBModel `gorm:"foreignKey:MusicaID;references:ID"`
}

func (LibraryDBModel) TableName() string {
	return "libreria_usuarios"
}
