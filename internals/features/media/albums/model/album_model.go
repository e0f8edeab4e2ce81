package model

import (
	"time"

	userModel "gerejaku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AlbumModel struct {
	AlbumID           uuid.UUID      `gorm:"column:album_id;type:uuid;primaryKey" json:"album_id"`
	AlbumName         string         `gorm:"column:album_name;size:150;not null" json:"album_name"`
	AlbumDescription  *string        `gorm:"column:album_description;type:text" json:"album_description,omitempty"`
	AlbumDate         datatypes.Date `gorm:"column:album_date;index" json:"album_date"`
	AlbumUploadedByID uuid.UUID      `gorm:"column:album_uploaded_by_id;type:uuid;not null;index" json:"album_uploaded_by_id"`
	AlbumCreatedAt    time.Time      `gorm:"column:album_created_at;autoCreateTime" json:"album_created_at"`
	AlbumUpdatedAt    time.Time      `gorm:"column:album_updated_at;autoUpdateTime" json:"album_updated_at"`

	UploadedBy *userModel.UserModel `gorm:"foreignKey:AlbumUploadedByID;references:ID" json:"uploaded_by,omitempty"`
	Images     []ImageModel         `gorm:"foreignKey:ImageAlbumID;references:AlbumID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (AlbumModel) TableName() string { return "albums" }

func (m *AlbumModel) BeforeCreate(tx *gorm.DB) error {
	if m.AlbumID == uuid.Nil {
		m.AlbumID = uuid.New()
	}
	return nil
}

// ImageMeta disimpan di kolom JSON (width/height/size opsional dari uploader).
type ImageMeta struct {
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
	Size   *int64 `json:"size,omitempty"`
}

type ImageModel struct {
	ImageID        uuid.UUID                     `gorm:"column:image_id;type:uuid;primaryKey" json:"image_id"`
	ImageAlbumID   uuid.UUID                     `gorm:"column:image_album_id;type:uuid;not null;index" json:"image_album_id"`
	ImageURL       string                        `gorm:"column:image_url;type:text;not null" json:"image_url"`
	ImageAlt       *string                       `gorm:"column:image_alt;size:255" json:"image_alt,omitempty"`
	ImageCaption   *string                       `gorm:"column:image_caption;type:text" json:"image_caption,omitempty"`
	ImageMeta      datatypes.JSONType[ImageMeta] `gorm:"column:image_meta" json:"image_meta"`
	ImageCreatedAt time.Time                     `gorm:"column:image_created_at;autoCreateTime" json:"image_created_at"`
}

func (ImageModel) TableName() string { return "images" }

func (m *ImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ImageID == uuid.Nil {
		m.ImageID = uuid.New()
	}
	return nil
}
