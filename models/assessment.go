package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SelfAssessment records one run of the compliance self-audit. The most
// recent row per organization drives the onboarding workflow stage and the
// score shown on the compliance dashboard.
type SelfAssessment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index;not null" json:"orgId"`

	Score    int `gorm:"not null" json:"score"`
	MaxScore int `gorm:"not null" json:"maxScore"`

	// ScoringModel mirrors the framework at the time the audit was taken
	// ("percentage" or "stars"), so historical scores keep their meaning
	// if the organization later switches framework.
	ScoringModel string `gorm:"size:20;not null;default:'percentage'" json:"scoringModel"`

	Answers datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"answers,omitempty"`
	TakenBy string         `gorm:"size:100" json:"takenBy"`
	TakenAt JSONTime       `gorm:"column:taken_at;not null" json:"takenAt"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for SelfAssessment
func (SelfAssessment) TableName() string {
	return "self_assessments"
}

func (a *SelfAssessment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
