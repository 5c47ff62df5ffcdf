package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validQuiz() Quiz {
	return Quiz{
		CourseID: uuid.New(),
		Questions: []Question{
			{
				Question:      "What does CRUD stand for?",
				Options:       []string{"Create Read Update Delete", "Cache Read Undo Drop"},
				CorrectAnswer: "Create Read Update Delete",
			},
		},
	}
}

func TestQuizValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Quiz)
		wantField string
	}{
		{
			name:   "valid quiz passes",
			mutate: func(q *Quiz) {},
		},
		{
			name:      "missing course reference",
			mutate:    func(q *Quiz) { q.CourseID = uuid.Nil },
			wantField: "courseId",
		},
		{
			name:      "no questions",
			mutate:    func(q *Quiz) { q.Questions = nil },
			wantField: "questions",
		},
		{
			name:      "question missing text",
			mutate:    func(q *Quiz) { q.Questions[0].Question = "" },
			wantField: "questions[0].question",
		},
		{
			name:      "empty options",
			mutate:    func(q *Quiz) { q.Questions[0].Options = []string{} },
			wantField: "questions[0].options",
		},
		{
			name:      "missing correct answer",
			mutate:    func(q *Quiz) { q.Questions[0].CorrectAnswer = "" },
			wantField: "questions[0].correctAnswer",
		},
		{
			name:      "correct answer not among options",
			mutate:    func(q *Quiz) { q.Questions[0].CorrectAnswer = "42" },
			wantField: "questions[0].correctAnswer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := validQuiz()
			tt.mutate(&quiz)

			errs := quiz.Validate()
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestQuizValidateChecksEveryQuestion(t *testing.T) {
	quiz := validQuiz()
	quiz.Questions = append(quiz.Questions, Question{
		Question:      "Second question",
		Options:       []string{"a", "b"},
		CorrectAnswer: "c",
	})

	errs := quiz.Validate()
	assert.Contains(t, errs, "questions[1].correctAnswer")
	assert.NotContains(t, errs, "questions[0].correctAnswer")
}
