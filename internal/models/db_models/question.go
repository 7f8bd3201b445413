package db_models

// Question is one of the fixed preference questions. Position drives the
// slot each answer occupies in the preference profile; the recommendation
// service depends on that ordering, so rows must not be renumbered.
type Question struct {
	QuestionID   uint   `gorm:"column:question_id;primaryKey;autoIncrement"`
	QuestionText string `gorm:"column:question_text"`
	Position     int    `gorm:"column:position"`
}
