package model

import "fmt"

// Unknown is the shared identity bucket that all unnamed participants
// collapse into when grouping head-to-head statistics.
const Unknown = "?"

// Record is one (game, participant) observation of a competition in
// long form. A Player of "" marks an unnamed participant. Extra holds
// pass-through columns that are not interpreted by the engine.
type Record struct {
	Game   string
	Player string
	Score  float64
	Extra  map[string]string
}

// Known reports whether the record names its participant.
func (r Record) Known() bool { return r.Player != "" }

// PlayerID identifies one participant occurrence inside a game.
//
// Named players carry Occ == 0 and compare equal wherever they appear.
// Unnamed players share the empty Name and are told apart by Occ, so
// two unnamed rows of the same game never compare equal to each other.
// PlayerID equality is the per-occurrence identity mode; Bucket gives
// the unknown-bucket mode used for aggregate grouping.
type PlayerID struct {
	Name string
	Occ  int
}

// Known reports whether the identity names a participant.
func (p PlayerID) Known() bool { return p.Name != "" }

// Bucket returns the grouping identity: the player name, or the shared
// Unknown bucket for unnamed occurrences.
func (p PlayerID) Bucket() string {
	if p.Name == "" {
		return Unknown
	}
	return p.Name
}

func (p PlayerID) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%s%d", Unknown, p.Occ)
	}
	return p.Name
}

// Matchup is one ordered pair of participant occurrences drawn from the
// same game, each keeping its own score. Self-pairs (a row against
// itself) are included.
type Matchup struct {
	Game    string
	Player1 PlayerID
	Player2 PlayerID
	Score1  float64
	Score2  float64
}

// ScoreDiff returns Score1 - Score2.
func (m Matchup) ScoreDiff() float64 { return m.Score1 - m.Score2 }

// Self reports whether the matchup pairs a participant occurrence with
// itself.
func (m Matchup) Self() bool { return m.Player1 == m.Player2 }

// PairgameRecord is one row of a decomposed two-participant game. Game
// ids are contiguous integers assigned in emission order, so every
// pairgame derived from an earlier original game has a smaller id than
// any pairgame derived from a later one.
type PairgameRecord struct {
	Game   int
	Player string
	Score  float64
	Extra  map[string]string
}

// CloneExtra returns a copy of an extra-column map. Derived rows get
// their own map so no table shares mutable state with its source.
func CloneExtra(extra map[string]string) map[string]string {
	if extra == nil {
		return nil
	}
	out := make(map[string]string, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}
