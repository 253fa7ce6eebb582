package model

// Question is one multiple-choice item of a Test. It is stored inline with
// its Test, so its position in Test.Questions is its identity.
type Question struct {
	Text          string   `json:"text" bson:"text"`
	Options       []string `json:"options" bson:"options"`
	CorrectIndex  int      `json:"correctIndex" bson:"correctIndex"`
	Marks         int      `json:"marks" bson:"marks"`
	NegativeMarks int      `json:"negativeMarks" bson:"negativeMarks"` // magnitude, applied as a penalty
}

// HasOption reports whether idx addresses one of the question's options.
func (q Question) HasOption(idx int) bool {
	return idx >= 0 && idx < len(q.Options)
}
