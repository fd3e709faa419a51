package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizQuestion is one step of the scent-matching quiz.
type QuizQuestion struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Prompt    string         `gorm:"not null" json:"prompt"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Options []QuizOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

// TableName sets the table name.
func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizOption is one selectable answer mapping to scent-family tags.
type QuizOption struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	QuestionID uint        `gorm:"not null;index" json:"question_id"`
	Label      string      `gorm:"not null" json:"label"`
	ScentTags  StringArray `gorm:"type:json" json:"scent_tags"`
	SortOrder  int         `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time   `json:"created_at"`
}

// TableName sets the table name.
func (QuizOption) TableName() string {
	return "quiz_options"
}
