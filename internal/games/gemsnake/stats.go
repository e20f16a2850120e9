package gemsnake

// RoundStats are the counters shown in the HUD and saved with the round.
// Only PhaseController mutates them.
type RoundStats struct {
	ExplosionsThisWave int // gems removed by the current resolution
	ExplosionsTotal    int // gems removed this round
	BiggestChain       int // most gems removed by a single resolution
	AgentLength        int
	RecordLength       int // longest snake in this process, kept across restarts
}

func (s *RoundStats) removed(n int) {
	s.ExplosionsThisWave += n
	s.ExplosionsTotal += n
	if s.ExplosionsThisWave > s.BiggestChain {
		s.BiggestChain = s.ExplosionsThisWave
	}
}

func (s *RoundStats) setLength(n int) {
	s.AgentLength = n
	if n > s.RecordLength {
		s.RecordLength = n
	}
}
