package matches

import (
	"fmt"

	"tournament/internals/rankings"
	"tournament/pkg/kvstore"

	"gorm.io/gorm"
)

type MatchService struct {
	KV kvstore.KVStore
	DB *gorm.DB
}

func New(kv kvstore.KVStore, db *gorm.DB) *MatchService {
	return &MatchService{
		KV: kv,
		DB: db,
	}
}

// ScheduleMatch inserts a match with no scores and status Scheduled. Bogus
// team or tournament ids fail the foreign key constraints.
func (m *MatchService) ScheduleMatch(tournamentID, team1ID, team2ID int, matchDate string) (Match, error) {
	match := Match{
		TournamentID: tournamentID,
		Team1ID:      team1ID,
		Team2ID:      team2ID,
		MatchDate:    matchDate,
		Status:       StatusScheduled,
	}
	err := m.DB.Create(&match).Error
	if err != nil {
		return Match{}, fmt.Errorf("error inserting match: %v", err)
	}
	return match, nil
}

// UpdateScore overwrites both scores and flips the match to Completed,
// whatever its current state: resubmitting the same scores is a no-op.
// An unknown match id updates nothing and is not an error; the returned
// tournament id is zero in that case.
func (m *MatchService) UpdateScore(matchID, team1Score, team2Score int) (int, error) {
	res := m.DB.Model(&Match{}).Where("match_id = ?", matchID).Updates(map[string]interface{}{
		"team1_score": team1Score,
		"team2_score": team2Score,
		"status":      StatusCompleted,
	})
	if res.Error != nil {
		return 0, fmt.Errorf("error updating score: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}

	var tournamentID int
	err := m.DB.Raw("SELECT tournament_id FROM matches WHERE match_id = ?", matchID).Scan(&tournamentID).Error
	if err != nil {
		return 0, err
	}

	// The ranking for this tournament is stale now.
	_ = m.KV.Delete(rankings.CacheKey(tournamentID))

	return tournamentID, nil
}
