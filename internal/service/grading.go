package service

import "github.com/lshigami/coursehive/internal/model"

// SubmittedAnswer is one caller choice. A nil SelectedIndex means skipped.
type SubmittedAnswer struct {
	QuestionIndex int
	SelectedIndex *int
}

type GradeResult struct {
	Answers []model.Answer // one per question, in question order
	Score   int            // never negative
}

// Grade scores submitted answers against the answer key of questions. It is
// driven by the question list: answers for unknown indices are ignored,
// questions without an answer count as skipped, and when an index is
// answered twice the first answer wins.
func Grade(questions []model.Question, submitted []SubmittedAnswer) GradeResult {
	selections := make(map[int]*int, len(submitted))
	for _, a := range submitted {
		if _, seen := selections[a.QuestionIndex]; !seen {
			selections[a.QuestionIndex] = a.SelectedIndex
		}
	}

	res := GradeResult{Answers: make([]model.Answer, len(questions))}
	total := 0
	for idx, q := range questions {
		selected := selections[idx]
		correct := selected != nil && *selected == q.CorrectIndex
		marks := 0
		switch {
		case correct:
			marks = q.Marks
		case selected != nil && q.NegativeMarks != 0:
			marks = -absInt(q.NegativeMarks)
		}
		total += marks
		res.Answers[idx] = model.Answer{
			QuestionIndex: idx,
			SelectedIndex: copyIntPtr(selected),
			IsCorrect:     correct,
			MarksObtained: marks,
		}
	}
	if total < 0 {
		total = 0
	}
	res.Score = total
	return res
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
