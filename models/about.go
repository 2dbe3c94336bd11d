package models

// About holds the site owner's personal information. Multiple rows may
// exist; public pages use the first active one.
type About struct {
	BaseModel
	FullName     string `gorm:"type:varchar(200);not null"`
	Title        string `gorm:"type:varchar(200);not null"`
	Bio          string `gorm:"type:text"` // rich text, stored as HTML
	Email        string `gorm:"type:varchar(254);not null"`
	Phone        string `gorm:"type:varchar(20)"`
	Address      string `gorm:"type:text"`
	GithubURL    string `gorm:"type:varchar(500)"`
	LinkedinURL  string `gorm:"type:varchar(500)"`
	TwitterURL   string `gorm:"type:varchar(500)"`
	ProfileImage string `gorm:"type:varchar(500)"`
	ResumePath   string `gorm:"type:varchar(500)"`
	IsActive     bool   `gorm:"default:true;index"`
}
