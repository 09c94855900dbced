package service

import "vidgate/internal/domain/entity"

// MetricsRecorder receives business counters from the use cases.
type MetricsRecorder interface {
	ObserveDecision(verdict entity.Verdict)
	ObserveBonusGrant(path string)
	ObserveDelivery(success bool)
	ObserveLoginOutcome(outcome string)
	SetLiveLoginSessions(n int)
}
