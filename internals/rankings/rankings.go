package rankings

import (
	"encoding/json"
	"fmt"
	"sort"

	"tournament/pkg/kvstore"

	"gorm.io/gorm"
)

type RankingService struct {
	KV kvstore.KVStore
	DB *gorm.DB
}

func New(kv kvstore.KVStore, db *gorm.DB) *RankingService {
	return &RankingService{
		KV: kv,
		DB: db,
	}
}

// CacheKey is the KV key holding the cached ranking JSON for a tournament.
// Writers that change the ranking delete it.
func CacheKey(tournamentID int) string {
	return fmt.Sprintf("rankings_%d", tournamentID)
}

// GetRankings returns every team of the tournament ordered by win count,
// serving from the KV cache when a score update hasn't invalidated it.
func (r *RankingService) GetRankings(tournamentID int) ([]TeamRanking, error) {
	if cached, err := r.KV.Get(CacheKey(tournamentID)); err == nil {
		rankings := make([]TeamRanking, 0)
		if json.Unmarshal([]byte(cached), &rankings) == nil {
			return rankings, nil
		}
	}

	rankings, err := r.computeRankings(tournamentID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rankings); err == nil {
		_ = r.KV.Set(CacheKey(tournamentID), string(raw))
	}

	return rankings, nil
}

// computeRankings derives win counts from completed matches. Every team of
// the tournament appears, with zero wins when it has no completed win. A
// match only credits a side when both scores are recorded and one is
// strictly higher: ties and partially recorded matches credit nobody.
func (r *RankingService) computeRankings(tournamentID int) ([]TeamRanking, error) {
	var teams []struct {
		TeamID int
		Name   string
	}
	err := r.DB.Raw("SELECT team_id, name FROM teams WHERE tournament_id = ? ORDER BY team_id", tournamentID).Scan(&teams).Error
	if err != nil {
		return nil, err
	}

	var matches []struct {
		Team1ID    int
		Team2ID    int
		Team1Score *int
		Team2Score *int
	}
	err = r.DB.Raw("SELECT team1_id, team2_id, team1_score, team2_score FROM matches WHERE tournament_id = ?", tournamentID).Scan(&matches).Error
	if err != nil {
		return nil, err
	}

	wins := make(map[int]int)
	for _, m := range matches {
		if m.Team1Score == nil || m.Team2Score == nil {
			// not yet completed
			continue
		}
		switch {
		case *m.Team1Score > *m.Team2Score:
			wins[m.Team1ID]++
		case *m.Team2Score > *m.Team1Score:
			wins[m.Team2ID]++
		}
	}

	rankings := make([]TeamRanking, 0, len(teams))
	for _, team := range teams {
		rankings = append(rankings, TeamRanking{TeamName: team.Name, Wins: wins[team.TeamID]})
	}

	// Stable keeps team insertion order among equal win counts; no further
	// tie-break is defined.
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Wins > rankings[j].Wins
	})

	return rankings, nil
}
