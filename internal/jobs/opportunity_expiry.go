// File: internal/jobs/opportunity_expiry.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"volunteer_hub_backend/internal/config"
	"volunteer_hub_backend/internal/opportunity"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OpportunityExpiryJob holds dependencies for the opportunity expiry job. It
// periodically closes active opportunities whose end date has passed.
type OpportunityExpiryJob struct {
	opportunityService opportunity.Service
	logger             *zap.Logger
	cfg                *config.Config
	cronScheduler      *cron.Cron
}

// NewOpportunityExpiryJob creates a new OpportunityExpiryJob.
func NewOpportunityExpiryJob(
	opportunityService opportunity.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *OpportunityExpiryJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &OpportunityExpiryJob{
		opportunityService: opportunityService,
		logger:             logger.Named("OpportunityExpiryJob"),
		cfg:                cfg,
		cronScheduler:      scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *OpportunityExpiryJob) SetupAndStart() error {
	jobSpec := j.cfg.OpportunityExpiryJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Opportunity expiry job schedule not defined (OPPORTUNITY_EXPIRY_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule opportunity expiry job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Opportunity expiry job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// runJob is the actual work performed by the cron job.
func (j *OpportunityExpiryJob) runJob() {
	j.logger.Info("Starting opportunity expiry job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	closedCount, err := j.opportunityService.ExpireOverdue(ctx)
	if err != nil {
		j.logger.Error("Opportunity expiry job run failed", zap.Error(err))
	} else {
		j.logger.Info("Opportunity expiry job run completed", zap.Int("opportunities_closed", closedCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *OpportunityExpiryJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping opportunity expiry job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Opportunity expiry job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Opportunity expiry job scheduler stop timed out.")
		}
	}
}

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
