package websocket

import (
	"encoding/json"
	"log"

	"github.com/golfpigeon/clubhouse/internal/tournament"
)

// StandingsBroadcaster adapts the hub to the tournament service's publisher
// contract.
type StandingsBroadcaster struct {
	hub *Hub
}

func NewStandingsBroadcaster(hub *Hub) *StandingsBroadcaster {
	return &StandingsBroadcaster{hub: hub}
}

func (b *StandingsBroadcaster) PublishStandings(tournamentID string, entries []tournament.LeaderboardEntry) {
	msg, err := json.Marshal(map[string]interface{}{
		"type":         "STANDINGS",
		"tournamentId": tournamentID,
		"leaderboard":  entries,
	})
	if err != nil {
		log.Println("error encoding standings message:", err)
		return
	}
	b.hub.Broadcast(tournamentID, msg)
}
