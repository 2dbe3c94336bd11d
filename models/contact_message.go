package models

// ContactMessage is the only entity written by public visitors. Status
// is changed by administrators; any status may follow any other.
type ContactMessage struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null"`
	Email     string `gorm:"type:varchar(254);not null"`
	Subject   string `gorm:"type:varchar(200);not null"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"type:varchar(20);default:'new';index"`
	IPAddress string `gorm:"type:varchar(45)"`
	UserAgent string `gorm:"type:text"`
}

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

var ContactStatusLabels = map[string]string{
	ContactStatusNew:      "New",
	ContactStatusRead:     "Read",
	ContactStatusReplied:  "Replied",
	ContactStatusArchived: "Archived",
}

// IsValidContactStatus reports whether status is one of the known codes.
func IsValidContactStatus(status string) bool {
	_, ok := ContactStatusLabels[status]
	return ok
}
