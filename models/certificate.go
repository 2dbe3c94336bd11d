package models

import "time"

type Certificate struct {
	BaseModel
	Name           string    `gorm:"type:varchar(200);not null"`
	Issuer         string    `gorm:"type:varchar(200);not null"`
	IssueDate      time.Time `gorm:"index"`
	ExpiryDate     *time.Time
	CertificateURL string `gorm:"type:varchar(500)"`
	CredentialID   string `gorm:"type:varchar(100)"`
	Image          string `gorm:"type:varchar(500)"`
	Skills         string `gorm:"type:text"` // comma separated list
	IsActive       bool   `gorm:"default:true;index"`
}
