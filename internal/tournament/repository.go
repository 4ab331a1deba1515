package tournament

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/pkg/db"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type TournamentRepository interface {
	CreateTournament(t *Tournament) error
	GetTournament(id uuid.UUID) (*Tournament, error)
	ListTournaments() ([]Tournament, error)
	UpdateTournament(t *Tournament) error
	AddParticipant(p *Participant) error
	RemoveParticipant(tournamentID, userID uuid.UUID) error
	SaveLeaderboard(tournamentID uuid.UUID, entries []LeaderboardEntry) error
	DropStandings(tournamentID uuid.UUID)
}

type GormTournamentRepository struct{}

func NewGormTournamentRepository() *GormTournamentRepository {
	return &GormTournamentRepository{}
}

var ctx = context.Background()

func standingsKey(tournamentID uuid.UUID) string {
	return fmt.Sprintf("tournament:%s:standings", tournamentID)
}

func (r *GormTournamentRepository) CreateTournament(t *Tournament) error {
	return db.DB.Create(t).Error
}

func (r *GormTournamentRepository) GetTournament(id uuid.UUID) (*Tournament, error) {
	var t Tournament
	result := db.DB.
		Preload("Participants", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("registration_date asc")
		}).
		Preload("Leaderboard", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc")
		}).
		Where("id = ?", id).First(&t)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, result.Error
	}
	return &t, nil
}

func (r *GormTournamentRepository) ListTournaments() ([]Tournament, error) {
	var tournaments []Tournament
	if err := db.DB.
		Preload("Participants").
		Preload("Leaderboard", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc")
		}).
		Order("start_date asc").Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *GormTournamentRepository) UpdateTournament(t *Tournament) error {
	return db.DB.Omit("Participants", "Leaderboard").Save(t).Error
}

func (r *GormTournamentRepository) AddParticipant(p *Participant) error {
	return db.DB.Create(p).Error
}

func (r *GormTournamentRepository) RemoveParticipant(tournamentID, userID uuid.UUID) error {
	return db.DB.
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Delete(&Participant{}).Error
}

// SaveLeaderboard replaces the stored standings with the freshly sorted set,
// then refreshes the redis mirror used for realtime reads.
func (r *GormTournamentRepository) SaveLeaderboard(tournamentID uuid.UUID, entries []LeaderboardEntry) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", tournamentID).Delete(&LeaderboardEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].ID = uuid.Nil
			entries[i].TournamentID = tournamentID
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return err
	}

	r.refreshStandings(tournamentID, entries)
	return nil
}

// DropStandings removes the redis mirror once a tournament no longer has
// live standings to serve.
func (r *GormTournamentRepository) DropStandings(tournamentID uuid.UUID) {
	if db.Rdb == nil {
		return
	}
	if err := db.Rdb.Del(ctx, standingsKey(tournamentID)).Err(); err != nil {
		fmt.Println("error dropping standings mirror:", err)
	}
}

func (r *GormTournamentRepository) refreshStandings(tournamentID uuid.UUID, entries []LeaderboardEntry) {
	if db.Rdb == nil {
		return
	}
	key := standingsKey(tournamentID)
	pipe := db.Rdb.TxPipeline()
	pipe.Del(ctx, key)
	for _, e := range entries {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(e.TotalScore), Member: e.UserID.String()})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		// The mirror is a read cache; postgres stays authoritative.
		fmt.Println("error refreshing standings mirror:", err)
	}
}
