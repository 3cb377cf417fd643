package readinglog

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

// testDeps bundles the mocks a test cares about; nil fields become empty
// mocks that panic on use.
type testDeps struct {
	logs    *logRepoMock
	quizzes *quizRepoMock
	users   *userRepoMock
	chain   *ledgerMock
	gen     *quizGeneratorMock
	settler *settlerMock
}

func newTestService(d testDeps) *Service {
	if d.logs == nil {
		d.logs = &logRepoMock{}
	}
	if d.quizzes == nil {
		d.quizzes = &quizRepoMock{}
	}
	if d.users == nil {
		d.users = &userRepoMock{}
	}
	if d.chain == nil {
		d.chain = &ledgerMock{}
	}
	if d.gen == nil {
		d.gen = &quizGeneratorMock{}
	}
	if d.settler == nil {
		d.settler = &settlerMock{}
	}

	// Tests exercise transaction boundaries through the repos, so the
	// manager just runs the callback.
	tx := &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(log, d.logs, d.quizzes, d.users, d.chain, d.gen, d.settler, tx)
}

func validSummary() string {
	return strings.TrimSpace(strings.Repeat("the navigator charts a slow course through the storm and learns patience ", 10))
}

func pendingLog(userID uuid.UUID) domain.ReadingLog {
	return domain.ReadingLog{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Solaris",
		DurationMinutes: 75,
		Summary:         validSummary(),
		ChainIndex:      9,
		Approvals:       domain.StageSubmitted,
		Status:          domain.LogStatusPending,
	}
}

func quizQuestions(correct int) []domain.QuizQuestion {
	qs := make([]domain.QuizQuestion, domain.QuizQuestionCount)
	for i := range qs {
		qs[i] = domain.QuizQuestion{
			Question: "What does the station orbit?",
			Choices:  []string{"A moon", "A planet", "A star", "Nothing"},
			Correct:  correct,
		}
	}
	return qs
}
