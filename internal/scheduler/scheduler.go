package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/courtside/stats-api/internal/logic"
)

const runTimeout = 10 * time.Minute

// Scheduler runs the prediction feedback loop on a cron schedule.
type Scheduler struct {
	spec     string
	feedback logic.FeedbackService
	logger   *zap.SugaredLogger
	cron     *cron.Cron
}

func New(spec string, feedback logic.FeedbackService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		spec:     spec,
		feedback: feedback,
		logger:   logger.Sugar(),
		cron:     cron.New(),
	}
}

// Start registers the feedback job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runFeedback); err != nil {
		return fmt.Errorf("failed to schedule feedback loop: %w", err)
	}
	s.cron.Start()
	s.logger.Infow("Feedback loop scheduled", "cron", s.spec)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// RunOnce executes a single feedback cycle immediately.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	collected, err := s.feedback.CollectPredictions(ctx)
	if err != nil {
		return fmt.Errorf("collect predictions: %w", err)
	}
	reports, err := s.feedback.EvaluateDiscrepancies(ctx)
	if err != nil {
		return fmt.Errorf("evaluate discrepancies: %w", err)
	}
	s.logger.Infow("Feedback cycle complete",
		"predictions_collected", collected,
		"reports", len(reports))
	return nil
}

func (s *Scheduler) runFeedback() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Errorw("Feedback cycle failed", "error", err)
	}
}
