package models

type Gallery struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null"`
	Image       string `gorm:"type:varchar(500);not null"`
	Category    string `gorm:"type:varchar(50);index;not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"default:true;index"`
}

const (
	GalleryCategoryProject     = "project"
	GalleryCategoryPersonal    = "personal"
	GalleryCategoryCertificate = "certificate"
	GalleryCategoryOther       = "other"
)

var GalleryCategoryLabels = map[string]string{
	GalleryCategoryProject:     "Project",
	GalleryCategoryPersonal:    "Personal",
	GalleryCategoryCertificate: "Certificate",
	GalleryCategoryOther:       "Other",
}

var GalleryCategories = []string{
	GalleryCategoryProject, GalleryCategoryPersonal, GalleryCategoryCertificate, GalleryCategoryOther,
}
