package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is one persisted résumé-versus-job-description scoring run.
type Analysis struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	JobFilePath    string    `gorm:"type:text;not null" json:"job_file_path"`
	ResumeFilePath string    `gorm:"type:text;not null" json:"resume_file_path"`
	Overall        int       `gorm:"not null" json:"overall"`
	Keyword        int       `gorm:"not null" json:"keyword"`
	Skill          int       `gorm:"not null" json:"skill"`
	Readability    int       `gorm:"not null" json:"readability"`
	Format         int       `gorm:"not null" json:"format"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
