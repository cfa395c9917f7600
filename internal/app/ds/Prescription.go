package ds

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the closed status set. Admin
// updates must not write arbitrary status strings.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Prescription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null" json:"user_id"`
	RawText      string    `gorm:"type:text" json:"raw_text"`
	FilePath     *string   `gorm:"type:varchar(500)" json:"file_path"`
	FileType     *string   `gorm:"type:varchar(50)" json:"file_type"`
	AnalysisJSON string    `gorm:"column:analysis_json;type:text;not null" json:"-"`
	Status       string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
