package models

import "time"

type Project struct {
	BaseModel
	Title         string `gorm:"type:varchar(200);not null"`
	Description   string `gorm:"type:text"` // rich text, stored as HTML
	ProjectType   string `gorm:"type:varchar(50);index;not null"`
	Technologies  string `gorm:"type:text"` // comma separated list
	GithubURL     string `gorm:"type:varchar(500)"`
	LiveURL       string `gorm:"type:varchar(500)"`
	FeaturedImage string `gorm:"type:varchar(500)"`
	IsFeatured    bool   `gorm:"default:false;index"`
	IsActive      bool   `gorm:"default:true;index"`
	StartDate     time.Time
	EndDate       *time.Time
}

const (
	ProjectTypeWeb     = "web"
	ProjectTypeMobile  = "mobile"
	ProjectTypeDesktop = "desktop"
	ProjectTypeOther   = "other"
)

// ProjectTypeLabels maps type codes to their display labels.
var ProjectTypeLabels = map[string]string{
	ProjectTypeWeb:     "Web Development",
	ProjectTypeMobile:  "Mobile App",
	ProjectTypeDesktop: "Desktop Application",
	ProjectTypeOther:   "Other",
}

// ProjectTypes lists the type codes in display order.
var ProjectTypes = []string{ProjectTypeWeb, ProjectTypeMobile, ProjectTypeDesktop, ProjectTypeOther}

// TypeLabel returns the display label for the project's type code.
func (p Project) TypeLabel() string {
	if label, ok := ProjectTypeLabels[p.ProjectType]; ok {
		return label
	}
	return p.ProjectType
}
