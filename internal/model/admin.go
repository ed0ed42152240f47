package model

import "time"

// AdminProfile holds the back-office settings screen data. A single row is
// kept; updates always target that row.
type AdminProfile struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Firstname   string    `json:"firstname" gorm:"type:varchar(100)"`
	Lastname    string    `json:"lastname" gorm:"type:varchar(100)"`
	Email       string    `json:"email" gorm:"type:varchar(255)"`
	PhoneNumber string    `json:"phonenumber" gorm:"type:varchar(50)"`
	Country     string    `json:"country" gorm:"type:varchar(100)"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for AdminProfile
func (AdminProfile) TableName() string {
	return "admin_profiles"
}

// PageView is one recorded visit, used by the analytics summary.
type PageView struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Path      string    `json:"path" gorm:"type:varchar(1024)"`
	Referrer  string    `json:"referrer" gorm:"type:varchar(1024)"`
	VisitorID string    `json:"visitor_id" gorm:"type:varchar(255);index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for PageView
func (PageView) TableName() string {
	return "page_views"
}
