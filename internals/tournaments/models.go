package tournaments

// Tournament status is free text; new tournaments start out Pending.
const StatusPending = "Pending"

// Tournaments Table structure.
type Tournament struct {
	TournamentID int    `json:"tournament_id" gorm:"primaryKey;autoIncrement;not null"`
	Name         string `json:"name" gorm:"not null"`
	StartDate    string `json:"start_date" gorm:"not null"`
	Status       string `json:"status" gorm:"not null"`
	Teams        []Team `json:"teams,omitempty" gorm:"foreignKey:TournamentID"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

// Teams Table structure. A team belongs to exactly one tournament.
type Team struct {
	TeamID       int      `json:"team_id" gorm:"primaryKey;autoIncrement;not null"`
	Name         string   `json:"name" gorm:"not null"`
	TournamentID int      `json:"tournament_id" gorm:"not null"`
	Players      []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

// Players Table structure. A player belongs to exactly one team.
type Player struct {
	PlayerID int    `json:"player_id" gorm:"primaryKey;autoIncrement;not null"`
	Name     string `json:"name" gorm:"not null"`
	TeamID   int    `json:"team_id" gorm:"not null"`
}

func (Player) TableName() string {
	return "players"
}

// MatchWithTeams is a match row joined with both team names for the
// tournament detail view.
type MatchWithTeams struct {
	MatchID    int    `json:"match_id"`
	Team1ID    int    `json:"team1_id"`
	Team2ID    int    `json:"team2_id"`
	Team1Score *int   `json:"team1_score"`
	Team2Score *int   `json:"team2_score"`
	MatchDate  string `json:"match_date"`
	Status     string `json:"status"`
	Team1Name  string `json:"team1_name"`
	Team2Name  string `json:"team2_name"`
}

// PlayerWithTeam is a player row joined with its team name.
type PlayerWithTeam struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
}

// TournamentDetails aggregates everything the tournament page shows.
type TournamentDetails struct {
	Tournament Tournament       `json:"tournament"`
	Teams      []Team           `json:"teams"`
	Matches    []MatchWithTeams `json:"matches"`
	Players    []PlayerWithTeam `json:"players"`
}
