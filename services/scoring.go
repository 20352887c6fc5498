package services

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/skillbridge/youth_platform/models"
)

var (
	// ErrUnknownQuestion means a submission referenced a question that does
	// not belong to the quiz. The whole submission is rejected rather than
	// silently dropping the answer.
	ErrUnknownQuestion = errors.New("submitted answer references a question not in this quiz")
	// ErrDuplicateAnswer means the same question was answered twice.
	ErrDuplicateAnswer = errors.New("question answered more than once")
	// ErrNoQuestions means the quiz has nothing to score against.
	ErrNoQuestions = errors.New("quiz has no questions")
)

type SubmittedAnswer struct {
	QuestionID uuid.UUID
	Answer     string
}

type ScoredAnswer struct {
	QuestionID uuid.UUID
	Answer     string
	IsCorrect  bool
}

// ScoreQuiz grades a submission against the quiz's question set.
// Questions left unanswered count against the score; the denominator is
// always the full question set.
func ScoreQuiz(questions []models.QuizQuestion, submitted []SubmittedAnswer) (int, []ScoredAnswer, error) {
	if len(questions) == 0 {
		return 0, nil, ErrNoQuestions
	}

	correctAnswers := make(map[uuid.UUID]string, len(questions))
	for _, q := range questions {
		correctAnswers[q.ID] = q.CorrectAnswer
	}

	seen := make(map[uuid.UUID]bool, len(submitted))
	scored := make([]ScoredAnswer, 0, len(submitted))
	correctCount := 0

	for _, answer := range submitted {
		expected, ok := correctAnswers[answer.QuestionID]
		if !ok {
			return 0, nil, ErrUnknownQuestion
		}
		if seen[answer.QuestionID] {
			return 0, nil, ErrDuplicateAnswer
		}
		seen[answer.QuestionID] = true

		isCorrect := expected == answer.Answer
		if isCorrect {
			correctCount++
		}
		scored = append(scored, ScoredAnswer{
			QuestionID: answer.QuestionID,
			Answer:     answer.Answer,
			IsCorrect:  isCorrect,
		})
	}

	score := int(math.Round(float64(correctCount) / float64(len(questions)) * 100))
	return score, scored, nil
}

// Passed applies the quiz's configured threshold.
func Passed(score, passingScore int) bool {
	return score >= passingScore
}
