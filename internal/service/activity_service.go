package service

import (
	"context"

	"salon-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// ActivityService records state-changing requests sent to the backend.
type ActivityService interface {
	LogAccepted(ctx context.Context, actorID string, kind entity.Kind, entityID string, action string)
	LogRejected(ctx context.Context, actorID string, kind entity.Kind, entityID string, action string, err error)
}

type activityService struct {
	log *logrus.Logger
}

func NewActivityService(log *logrus.Logger) ActivityService {
	return &activityService{log: log}
}

// LogAccepted logs a mutation the backend accepted
func (s *activityService) LogAccepted(ctx context.Context, actorID string, kind entity.Kind, entityID string, action string) {
	s.log.WithFields(logrus.Fields{
		"actor_id":  actorID,
		"entity":    kind,
		"entity_id": entityID,
		"action":    action,
		"outcome":   "accepted",
	}).Info("activity")
}

// LogRejected logs a mutation that failed locally or at the backend
func (s *activityService) LogRejected(ctx context.Context, actorID string, kind entity.Kind, entityID string, action string, err error) {
	s.log.WithFields(logrus.Fields{
		"actor_id":  actorID,
		"entity":    kind,
		"entity_id": entityID,
		"action":    action,
		"outcome":   "rejected",
		"error":     err.Error(),
	}).Warn("activity")
}
