package tournaments

import (
	"fmt"

	"tournament/internals/rankings"
	"tournament/pkg/kvstore"

	"gorm.io/gorm"
)

type TournamentService struct {
	KV kvstore.KVStore
	DB *gorm.DB
}

func New(kv kvstore.KVStore, db *gorm.DB) *TournamentService {
	return &TournamentService{
		KV: kv,
		DB: db,
	}
}

// CreateTournament inserts a tournament with status Pending. Identity is
// store-assigned.
func (t *TournamentService) CreateTournament(name, startDate string) (Tournament, error) {
	tournament := Tournament{
		Name:      name,
		StartDate: startDate,
		Status:    StatusPending,
	}
	err := t.DB.Create(&tournament).Error
	if err != nil {
		return Tournament{}, fmt.Errorf("error inserting tournament: %v", err)
	}
	return tournament, nil
}

func (t *TournamentService) GetTournaments() ([]Tournament, error) {
	tournaments := make([]Tournament, 0)
	err := t.DB.Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// GetTournamentDetails aggregates the tournament row with its teams, its
// matches joined with both team names and its players joined with their
// team name.
func (t *TournamentService) GetTournamentDetails(tournamentID int) (TournamentDetails, error) {
	var details TournamentDetails

	err := t.DB.First(&details.Tournament, "tournament_id = ?", tournamentID).Error
	if err != nil {
		return details, err
	}

	details.Teams = make([]Team, 0)
	err = t.DB.Where("tournament_id = ?", tournamentID).Find(&details.Teams).Error
	if err != nil {
		return details, err
	}

	details.Matches = make([]MatchWithTeams, 0)
	err = t.DB.Raw(`SELECT m.match_id, m.team1_id, m.team2_id, m.team1_score, m.team2_score,
			m.match_date, m.status, t1.name AS team1_name, t2.name AS team2_name
		FROM matches m
		JOIN teams t1 ON m.team1_id = t1.team_id
		JOIN teams t2 ON m.team2_id = t2.team_id
		WHERE m.tournament_id = ?`, tournamentID).Scan(&details.Matches).Error
	if err != nil {
		return details, err
	}

	details.Players = make([]PlayerWithTeam, 0)
	err = t.DB.Raw(`SELECT p.player_id, p.name, p.team_id, t.name AS team_name
		FROM players p
		JOIN teams t ON p.team_id = t.team_id
		WHERE t.tournament_id = ?`, tournamentID).Scan(&details.Players).Error
	if err != nil {
		return details, err
	}

	return details, nil
}

// AddTeam inserts a team under a tournament. A bogus tournament id fails the
// foreign key constraint instead of corrupting the table silently.
func (t *TournamentService) AddTeam(tournamentID int, name string) (Team, error) {
	team := Team{
		Name:         name,
		TournamentID: tournamentID,
	}
	err := t.DB.Create(&team).Error
	if err != nil {
		return Team{}, fmt.Errorf("error inserting team: %v", err)
	}

	// A new team changes the ranking table even without matches.
	_ = t.KV.Delete(rankings.CacheKey(tournamentID))

	return team, nil
}

func (t *TournamentService) AddPlayer(teamID int, name string) (Player, error) {
	player := Player{
		Name:   name,
		TeamID: teamID,
	}
	err := t.DB.Create(&player).Error
	if err != nil {
		return Player{}, fmt.Errorf("error inserting player: %v", err)
	}
	return player, nil
}
