package models

// Service is one offered service, shown as an ordered list.
type Service struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"` // rich text, stored as HTML
	Icon        string `gorm:"type:varchar(50)"` // FontAwesome icon class
	Order       int    `gorm:"default:0;index"`
	IsActive    bool   `gorm:"default:true;index"`
}
