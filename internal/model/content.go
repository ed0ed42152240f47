package model

import (
	"time"

	"gorm.io/gorm"
)

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

// Event represents a company event shown on the marketing site
type Event struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Date        string         `json:"date" gorm:"type:varchar(50)"`
	Time        string         `json:"time" gorm:"type:varchar(50)"`
	Location    string         `json:"location" gorm:"type:varchar(255)"`
	Description string         `json:"description" gorm:"type:text"`
	Status      string         `json:"status" gorm:"type:varchar(50);not null;default:upcoming"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// Article statuses.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article represents a site article. Tags are stored comma-separated.
type Article struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string         `json:"title" gorm:"type:varchar(255);not null"`
	Content   string         `json:"content" gorm:"type:text"`
	Category  string         `json:"category" gorm:"type:varchar(100);index"`
	Tags      string         `json:"tags" gorm:"type:text"`
	Status    string         `json:"status" gorm:"type:varchar(50);not null;default:draft;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name for Article
func (Article) TableName() string {
	return "articles"
}

// GalleryImage represents a gallery entry. The binary lives in external
// object storage; only its URL and storage path are recorded here.
type GalleryImage struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Category    string         `json:"category" gorm:"type:varchar(100);index"`
	ImageURL    string         `json:"image_url" gorm:"type:varchar(1024)"`
	ImagePath   string         `json:"image_path" gorm:"type:varchar(1024)"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name for GalleryImage
func (GalleryImage) TableName() string {
	return "gallery_images"
}
