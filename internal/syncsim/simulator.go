// Package syncsim simulates a slow remote refresh of a single entry.
//
// The Simulator holds at most one job. Scheduling the completion is left to
// the caller's event loop: it arranges for Finish(job.Token) to run after
// Delay(). A token that is no longer current (cancelled, superseded or the
// entry was deleted) finishes nothing, so late timers are harmless.
package syncsim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/nikbrunner/domsel/internal/model"
)

// DefaultDelay is how long a simulated sync takes.
const DefaultDelay = 5 * time.Second

// Job is one in-flight sync.
type Job struct {
	Token     string
	EntryID   int64
	StartedAt time.Time
}

// Params holds parameters for creating a Simulator.
type Params struct {
	Delay       time.Duration // zero uses DefaultDelay
	FailureRate float64       // probability in [0,1] that a sync ends in StatusError
	Rand        func() float64
	Now         func() time.Time
}

// Simulator manages the single sync slot.
type Simulator struct {
	delay       time.Duration
	failureRate float64
	rand        func() float64
	now         func() time.Time

	current *Job
}

// New creates a Simulator with the given parameters.
func New(params Params) *Simulator {
	delay := params.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	failureRate := params.FailureRate
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}

	r := params.Rand
	if r == nil {
		r = rand.Float64
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &Simulator{
		delay:       delay,
		failureRate: failureRate,
		rand:        r,
		now:         now,
	}
}

// Delay returns the time a sync takes to complete.
func (s *Simulator) Delay() time.Duration {
	return s.delay
}

// Start begins a sync for entryID. Any active job is cancelled first and
// returned as superseded.
func (s *Simulator) Start(entryID int64) (Job, *Job) {
	var superseded *Job
	if s.current != nil {
		prev := *s.current
		superseded = &prev
	}

	job := Job{
		Token:     uuid.NewString(),
		EntryID:   entryID,
		StartedAt: s.now(),
	}
	s.current = &job
	return job, superseded
}

// Cancel drops the active job. Calling it with nothing active is a no-op.
func (s *Simulator) Cancel() (Job, bool) {
	if s.current == nil {
		return Job{}, false
	}
	job := *s.current
	s.current = nil
	return job, true
}

// CancelFor cancels the active job only if it targets entryID.
func (s *Simulator) CancelFor(entryID int64) bool {
	if s.current == nil || s.current.EntryID != entryID {
		return false
	}
	s.current = nil
	return true
}

// Finish completes the job identified by token and reports the outcome status.
// It returns false when token is not the active job.
func (s *Simulator) Finish(token string) (Job, model.Status, bool) {
	if s.current == nil || s.current.Token != token {
		return Job{}, "", false
	}
	job := *s.current
	s.current = nil
	return job, s.outcome(), true
}

// Active returns the in-flight job, if any.
func (s *Simulator) Active() (Job, bool) {
	if s.current == nil {
		return Job{}, false
	}
	return *s.current, true
}

// SyncingID returns the id of the entry being synced, if any.
func (s *Simulator) SyncingID() (int64, bool) {
	if s.current == nil {
		return 0, false
	}
	return s.current.EntryID, true
}

// IsSyncing reports whether entryID is the active job's target.
func (s *Simulator) IsSyncing(entryID int64) bool {
	id, ok := s.SyncingID()
	return ok && id == entryID
}

func (s *Simulator) outcome() model.Status {
	if s.failureRate > 0 && s.rand() < s.failureRate {
		return model.StatusError
	}
	return model.StatusProcessed
}
