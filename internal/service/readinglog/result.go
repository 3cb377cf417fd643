package readinglog

import (
	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

// QuizChallenge is a generated quiz with the correct answers stripped,
// safe to send to the student.
type QuizChallenge struct {
	QuizID             uuid.UUID
	LogID              uuid.UUID
	Questions          []ChallengeQuestion
	SecondsPerQuestion int
}

// ChallengeQuestion is one question as presented to the student.
type ChallengeQuestion struct {
	Question string
	Choices  []string
}

// QuizResult is the outcome of scoring a quiz attempt.
type QuizResult struct {
	Correct   int
	Passed    bool
	Approvals domain.ApprovalStage
}

func newChallenge(quiz domain.Quiz) QuizChallenge {
	questions := make([]ChallengeQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = ChallengeQuestion{Question: q.Question, Choices: q.Choices}
	}
	return QuizChallenge{
		QuizID:             quiz.ID,
		LogID:              quiz.LogID,
		Questions:          questions,
		SecondsPerQuestion: int(domain.QuizAnswerWindow.Seconds()),
	}
}
