package model

// Answer is the graded outcome for one question of an Attempt.
// A nil SelectedIndex means the question was skipped.
type Answer struct {
	QuestionIndex int  `json:"questionIndex" bson:"questionIndex"`
	SelectedIndex *int `json:"selectedIndex" bson:"selectedIndex"`
	IsCorrect     bool `json:"isCorrect" bson:"isCorrect"`
	MarksObtained int  `json:"marksObtained" bson:"marksObtained"`
}
