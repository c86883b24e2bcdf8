package rankings

// TeamRanking is one row of the derived ranking view: never persisted.
type TeamRanking struct {
	TeamName string `json:"team_name"`
	Wins     int    `json:"wins"`
}
