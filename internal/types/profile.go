package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile captures the learning preferences collected during onboarding.
// At most one per user; uniqueness is enforced by a check-then-insert in the
// service layer rather than a database constraint.
type Profile struct {
	gorm.Model
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User         *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	LearningType LearningType   `gorm:"column:learning_type;not null;default:'TEXT'" json:"learning_type"`
	Topics       datatypes.JSON `gorm:"type:jsonb;column:topics;not null" json:"topics"`
	Goal         *string        `gorm:"column:goal;size:64" json:"goal,omitempty"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profile"
}

func (p *Profile) SetTopics(topics []string) error {
	raw, err := json.Marshal(topics)
	if err != nil {
		return err
	}
	p.Topics = datatypes.JSON(raw)
	return nil
}

// TopicList decodes the jsonb topics column. A malformed column yields an
// empty list rather than an error; generation can still proceed.
func (p *Profile) TopicList() []string {
	var topics []string
	if len(p.Topics) == 0 {
		return topics
	}
	if err := json.Unmarshal(p.Topics, &topics); err != nil {
		return nil
	}
	return topics
}
