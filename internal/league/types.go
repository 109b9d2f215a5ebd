package league

// TeamID identifies a team everywhere: store rows, matchups and derived views.
type TeamID int64

// Team is a competitor in the league.
type Team struct {
	ID    TeamID `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Color string `json:"color"`
}

// ScoreEntry is a single (matchday, team) score as stored.
type ScoreEntry struct {
	Matchday string `json:"matchday"`
	TeamID   TeamID `json:"team_id"`
	Points   int    `json:"points"`
}

// Round groups the entries of one matchday.
type Round struct {
	Label  string         `json:"id"`
	Scores map[TeamID]int `json:"scores"`
}

// EntryState distinguishes a team that did not play from one that played and scored nothing.
type EntryState int

const (
	NoEntry EntryState = iota
	ZeroEntry
	Scored
)

func (s EntryState) String() string {
	switch s {
	case ZeroEntry:
		return "zero"
	case Scored:
		return "scored"
	default:
		return "no-entry"
	}
}

// Entry is a team's result in one round.
type Entry struct {
	Points int
	Played bool
}

// State classifies the entry.
func (e Entry) State() EntryState {
	switch {
	case !e.Played:
		return NoEntry
	case e.Points == 0:
		return ZeroEntry
	default:
		return Scored
	}
}

// Entry returns the team's result for this round.
func (r Round) Entry(id TeamID) Entry {
	p, ok := r.Scores[id]
	return Entry{Points: p, Played: ok}
}

// Number is the ordering key of the round.
func (r Round) Number() int {
	return MatchdayNumber(r.Label)
}

// Matchup is a weekly duel. A nil Player2 is a bye; a nil Winner is undecided.
type Matchup struct {
	ID       string  `json:"id,omitempty"`
	Gameweek int     `json:"gameweek"`
	Player1  TeamID  `json:"player1_id"`
	Player2  *TeamID `json:"player2_id"`
	Winner   *TeamID `json:"winner_id"`
}

// IsBye reports whether the matchup has no opponent.
func (m Matchup) IsBye() bool {
	return m.Player2 == nil
}

// Involves reports whether the team is one of the two sides.
func (m Matchup) Involves(id TeamID) bool {
	return m.Player1 == id || (m.Player2 != nil && *m.Player2 == id)
}

// TeamSet is a set of team identifiers.
type TeamSet map[TeamID]struct{}

// Has reports membership.
func (s TeamSet) Has(id TeamID) bool {
	_, ok := s[id]
	return ok
}

// Standing is a row of the main table.
type Standing struct {
	Team         Team    `json:"team"`
	TotalPoints  int     `json:"total_points"`
	RoundsPlayed int     `json:"rounds_played"`
	Average      float64 `json:"average"`
	IsInactive   bool    `json:"is_inactive"`
}

// PositionalStanding is a row of the positional-points table.
type PositionalStanding struct {
	Team             Team `json:"team"`
	PositionalPoints int  `json:"positional_points"`
}

// CumulativePoint holds running totals after one round.
type CumulativePoint struct {
	Label  string         `json:"name"`
	Totals map[TeamID]int `json:"totals"`
}

// RankPoint holds the table position of every team after one round.
type RankPoint struct {
	Label string         `json:"name"`
	Ranks map[TeamID]int `json:"ranks"`
}

// ProjectionPoint is a cumulative point, either historical or extrapolated.
type ProjectionPoint struct {
	Label     string             `json:"name"`
	Totals    map[TeamID]float64 `json:"totals"`
	Projected bool               `json:"is_projection"`
}

// StreakKind is the classification of a team's recent form.
type StreakKind string

const (
	StreakNone     StreakKind = "none"
	StreakHot      StreakKind = "hot"
	StreakCold     StreakKind = "cold"
	StreakInactive StreakKind = "inactive"
)

// Streak is a team's form classification.
type Streak struct {
	Kind   StreakKind `json:"kind"`
	Length int        `json:"length"`
	Reason string     `json:"reason"`
}

// DuelOutcome is the result of a duel from the point of view of the matchup.
type DuelOutcome string

const (
	OutcomePending DuelOutcome = "pending"
	OutcomeBye     DuelOutcome = "bye"
	OutcomeWin     DuelOutcome = "decided"
	OutcomeDraw    DuelOutcome = "draw"
)

// DuelResult is a resolved matchup.
type DuelResult struct {
	Matchup  Matchup     `json:"matchup"`
	Outcome  DuelOutcome `json:"outcome"`
	Points1  int         `json:"player1_points"`
	Points2  int         `json:"player2_points"`
	Margin   int         `json:"margin"`
	WinnerID *TeamID     `json:"winner_id,omitempty"`
}

// Played reports whether the duel's round has been scored.
func (d DuelResult) Played() bool {
	return d.Outcome == OutcomeWin || d.Outcome == OutcomeDraw
}

// DuelRecord is a row of the duel league.
type DuelRecord struct {
	Team     Team `json:"team"`
	Played   int  `json:"played"`
	Wins     int  `json:"wins"`
	Draws    int  `json:"draws"`
	Losses   int  `json:"losses"`
	Points   int  `json:"points"`
	LostLast bool `json:"lost_last"`
}
