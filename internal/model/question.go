package model

import "time"

type Question struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Title      string     `json:"title" gorm:"not null"`
	Body       string     `json:"body" gorm:"type:text"`
	LanguageID *uint      `json:"language_id,omitempty" gorm:"index"`
	Language   *Language  `json:"language,omitempty" gorm:"foreignKey:LanguageID;constraint:OnDelete:SET NULL;"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:question_categories;"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
