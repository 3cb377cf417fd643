package readinglog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/pkg/ctxutil"
)

// RequestQuiz generates a fresh comprehension quiz for a log awaiting
// verification. A failed attempt does not lock the log; the student can
// request another quiz as long as verification is still open.
func (s *Service) RequestQuiz(ctx context.Context, logID uuid.UUID) (QuizChallenge, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return QuizChallenge{}, domain.ErrUnauthorized
	}

	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return QuizChallenge{}, err
	}
	if log.UserID != userID {
		return QuizChallenge{}, domain.ErrForbidden
	}
	if err := verificationOpen(log); err != nil {
		return QuizChallenge{}, err
	}

	questions, err := s.quizGen.Generate(ctx, log.Title, log.Summary)
	if err != nil {
		return QuizChallenge{}, fmt.Errorf("generate quiz for log %s: %w", logID, err)
	}

	quiz, err := s.quizzes.Create(ctx, logID, questions)
	if err != nil {
		return QuizChallenge{}, fmt.Errorf("store quiz: %w", err)
	}

	s.log.Info("quiz generated", "quiz_id", quiz.ID, "log_id", logID)

	return newChallenge(quiz), nil
}

// SubmitQuizAnswers scores a quiz attempt. Each quiz is scored exactly once.
// A passing score moves the log to the quiz-verified stage; a failing score
// leaves it unchanged so the student can try again with a new quiz.
func (s *Service) SubmitQuizAnswers(ctx context.Context, quizID uuid.UUID, answers []domain.QuizAnswer) (QuizResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return QuizResult{}, domain.ErrUnauthorized
	}

	if len(answers) > domain.QuizQuestionCount {
		return QuizResult{}, domain.NewValidationError("answers", "more answers than questions")
	}

	quiz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return QuizResult{}, err
	}

	log, err := s.logs.GetByID(ctx, quiz.LogID)
	if err != nil {
		return QuizResult{}, fmt.Errorf("load log for quiz %s: %w", quizID, err)
	}
	if log.UserID != userID {
		return QuizResult{}, domain.ErrForbidden
	}
	if err := verificationOpen(log); err != nil {
		return QuizResult{}, err
	}

	// Claim the quiz before scoring so a concurrent submission of the
	// same quiz cannot be counted twice.
	if err := s.quizzes.Consume(ctx, quizID); err != nil {
		return QuizResult{}, err
	}

	correct, passed := domain.ScoreQuiz(quiz.Questions, answers)

	approvals := log.Approvals
	if passed {
		if err := s.logs.AdvanceApprovals(ctx, log.ID, domain.StageQuizVerified); err != nil {
			return QuizResult{}, fmt.Errorf("advance approvals: %w", err)
		}
		approvals = domain.StageQuizVerified
	}

	s.log.Info("quiz scored",
		"quiz_id", quizID, "log_id", log.ID, "correct", correct, "passed", passed)

	return QuizResult{Correct: correct, Passed: passed, Approvals: approvals}, nil
}

// verificationOpen reports whether a log can still go through quiz
// verification.
func verificationOpen(log domain.ReadingLog) error {
	if log.Status.IsTerminal() {
		return fmt.Errorf("log %s is already %s: %w", log.ID, log.Status, domain.ErrConflict)
	}
	if log.Approvals >= domain.StageQuizVerified {
		return fmt.Errorf("log %s is already quiz-verified: %w", log.ID, domain.ErrConflict)
	}
	return nil
}
