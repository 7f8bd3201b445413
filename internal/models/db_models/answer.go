package db_models

import "time"

type Answer struct {
	AnswerID   uint      `gorm:"column:answer_id;primaryKey;autoIncrement"`
	UserID     int       `gorm:"column:user_id;index"`
	QuestionID uint      `gorm:"column:question_id"`
	Answer     string    `gorm:"column:answer"`
	Date       time.Time `gorm:"column:date;autoCreateTime"`

	Question Question `gorm:"foreignKey:QuestionID"`
}
