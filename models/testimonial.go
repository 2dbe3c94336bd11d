package models

type Testimonial struct {
	BaseModel
	ClientName  string `gorm:"type:varchar(200);not null"`
	ClientTitle string `gorm:"type:varchar(200)"`
	Company     string `gorm:"type:varchar(200)"`
	Content     string `gorm:"type:text"` // rich text, stored as HTML
	ClientImage string `gorm:"type:varchar(500)"`
	Rating      int    `gorm:"not null"` // 1-5
	IsFeatured  bool   `gorm:"default:false;index"`
	IsActive    bool   `gorm:"default:true;index"`
}
