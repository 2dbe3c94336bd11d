package models

type FAQ struct {
	BaseModel
	Question string `gorm:"type:varchar(500);not null"`
	Answer   string `gorm:"type:text"` // rich text, stored as HTML
	Category string `gorm:"type:varchar(50);index;not null"`
	Order    int    `gorm:"default:0;index"`
	IsActive bool   `gorm:"default:true;index"`
}

const (
	FAQCategoryGeneral   = "general"
	FAQCategoryTechnical = "technical"
	FAQCategoryServices  = "services"
	FAQCategoryPricing   = "pricing"
	FAQCategoryOther     = "other"
)

var FAQCategoryLabels = map[string]string{
	FAQCategoryGeneral:   "General",
	FAQCategoryTechnical: "Technical",
	FAQCategoryServices:  "Services",
	FAQCategoryPricing:   "Pricing",
	FAQCategoryOther:     "Other",
}
