package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/skillbridge/youth_platform/models"
)

func makeQuestions(answers ...string) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, len(answers))
	for i, a := range answers {
		questions[i] = models.QuizQuestion{ID: uuid.New(), CorrectAnswer: a, OrderIndex: i}
	}
	return questions
}

func answerAll(questions []models.QuizQuestion, correct int) []SubmittedAnswer {
	submitted := make([]SubmittedAnswer, len(questions))
	for i, q := range questions {
		answer := q.CorrectAnswer
		if i >= correct {
			answer = q.CorrectAnswer + "-wrong"
		}
		submitted[i] = SubmittedAnswer{QuestionID: q.ID, Answer: answer}
	}
	return submitted
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		correct      int
		passingScore int
		wantScore    int
		wantPassed   bool
	}{
		{"three of four passes at 70", 4, 3, 70, 75, true},
		{"one of four fails at 70", 4, 1, 70, 25, false},
		{"all correct", 5, 5, 100, 100, true},
		{"none correct", 5, 0, 50, 0, false},
		{"rounds up from two thirds", 3, 2, 70, 67, false},
		{"exact threshold passes", 2, 1, 50, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := make([]string, tt.total)
			for i := range answers {
				answers[i] = "option-a"
			}
			questions := makeQuestions(answers...)

			score, scored, err := ScoreQuiz(questions, answerAll(questions, tt.correct))
			if err != nil {
				t.Fatalf("ScoreQuiz returned error: %v", err)
			}
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if got := Passed(score, tt.passingScore); got != tt.wantPassed {
				t.Errorf("passed = %v, want %v", got, tt.wantPassed)
			}
			if len(scored) != tt.total {
				t.Errorf("scored %d answers, want %d", len(scored), tt.total)
			}
		})
	}
}

func TestScoreQuizUnansweredQuestionsCountAgainst(t *testing.T) {
	questions := makeQuestions("a", "b", "c", "d")
	// Answer only the first two, both correctly.
	submitted := []SubmittedAnswer{
		{QuestionID: questions[0].ID, Answer: "a"},
		{QuestionID: questions[1].ID, Answer: "b"},
	}

	score, scored, err := ScoreQuiz(questions, submitted)
	if err != nil {
		t.Fatalf("ScoreQuiz returned error: %v", err)
	}
	if score != 50 {
		t.Errorf("score = %d, want 50 (denominator is the full question set)", score)
	}
	if len(scored) != 2 {
		t.Errorf("scored %d answers, want 2", len(scored))
	}
}

func TestScoreQuizRejectsBadSubmissions(t *testing.T) {
	questions := makeQuestions("a", "b")

	t.Run("unknown question id", func(t *testing.T) {
		submitted := []SubmittedAnswer{{QuestionID: uuid.New(), Answer: "a"}}
		_, _, err := ScoreQuiz(questions, submitted)
		if !errors.Is(err, ErrUnknownQuestion) {
			t.Fatalf("expected ErrUnknownQuestion, got %v", err)
		}
	})

	t.Run("duplicate answer", func(t *testing.T) {
		submitted := []SubmittedAnswer{
			{QuestionID: questions[0].ID, Answer: "a"},
			{QuestionID: questions[0].ID, Answer: "a"},
		}
		_, _, err := ScoreQuiz(questions, submitted)
		if !errors.Is(err, ErrDuplicateAnswer) {
			t.Fatalf("expected ErrDuplicateAnswer, got %v", err)
		}
	})

	t.Run("empty quiz", func(t *testing.T) {
		_, _, err := ScoreQuiz(nil, nil)
		if !errors.Is(err, ErrNoQuestions) {
			t.Fatalf("expected ErrNoQuestions, got %v", err)
		}
	})
}
