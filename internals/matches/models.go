package matches

import "tournament/internals/tournaments"

const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
)

// Matches Table structure. Scores stay NULL until the first score
// submission flips the match to Completed.
type Match struct {
	MatchID      int    `json:"match_id" gorm:"primaryKey;autoIncrement;not null"`
	TournamentID int    `json:"tournament_id" gorm:"not null"`
	Team1ID      int    `json:"team1_id" gorm:"not null"`
	Team2ID      int    `json:"team2_id" gorm:"not null"`
	Team1Score   *int   `json:"team1_score"`
	Team2Score   *int   `json:"team2_score"`
	MatchDate    string `json:"match_date" gorm:"not null"`
	Status       string `json:"status" gorm:"not null"`

	Tournament *tournaments.Tournament `json:"-" gorm:"foreignKey:TournamentID"`
	Team1      *tournaments.Team       `json:"-" gorm:"foreignKey:Team1ID"`
	Team2      *tournaments.Team       `json:"-" gorm:"foreignKey:Team2ID"`
}

func (Match) TableName() string {
	return "matches"
}
