package models

type Skill struct {
	BaseModel
	Name              string  `gorm:"type:varchar(100);not null"`
	Category          string  `gorm:"type:varchar(50);index;not null"`
	Proficiency       int     `gorm:"not null"` // percentage, 0-100
	YearsOfExperience float64 `gorm:"type:decimal(3,1);default:0"`
	Icon              string  `gorm:"type:varchar(50)"`
	Order             int     `gorm:"default:0;index"`
	IsActive          bool    `gorm:"default:true;index"`
}

const (
	SkillCategoryFrontend = "frontend"
	SkillCategoryBackend  = "backend"
	SkillCategoryDatabase = "database"
	SkillCategoryDevOps   = "devops"
	SkillCategoryTools    = "tools"
	SkillCategoryOther    = "other"
)

var SkillCategoryLabels = map[string]string{
	SkillCategoryFrontend: "Frontend",
	SkillCategoryBackend:  "Backend",
	SkillCategoryDatabase: "Database",
	SkillCategoryDevOps:   "DevOps",
	SkillCategoryTools:    "Tools",
	SkillCategoryOther:    "Other",
}
