package engine

import "log"

// EndReason records why a run ended
type EndReason uint8

const (
	ReasonNone EndReason = iota
	ReasonFrameHit
	ReasonFell
)

func (r EndReason) String() string {
	switch r {
	case ReasonFrameHit:
		return "frame hit ground"
	case ReasonFell:
		return "fell off screen"
	default:
		return "none"
	}
}

// Session is the score and game-over state of the current run
// Owned by Game and passed explicitly to every tick phase
type Session struct {
	Score  int
	Over   bool
	Reason EndReason

	// Display only; not part of the scoring rules
	FinalScore int
	BestScore  int
	Runs       int
}

// NewSession returns an active session with zero score
func NewSession() *Session {
	return &Session{Runs: 1}
}

// Active reports whether the run is still going
func (s *Session) Active() bool {
	return !s.Over
}

// RecordRotation adds one point for a full rotation; ignored once the run is over
func (s *Session) RecordRotation() bool {
	if s.Over {
		return false
	}
	s.Score++
	if s.Score > s.BestScore {
		s.BestScore = s.Score
	}
	log.Printf("Full rotation, score %d", s.Score)
	return true
}

// End finishes the run; the score resets and the final score is kept for display
func (s *Session) End(reason EndReason) {
	if s.Over {
		return
	}
	s.Over = true
	s.Reason = reason
	s.FinalScore = s.Score
	s.Score = 0
	log.Printf("Game over (%s), final score %d, best %d", reason, s.FinalScore, s.BestScore)
}

// Restart begins a new run
func (s *Session) Restart() {
	s.Over = false
	s.Reason = ReasonNone
	s.Score = 0
	s.Runs++
	log.Printf("Restart, run %d", s.Runs)
}
