package database

import (
	"sort"
	"sync"

	"github.com/awesome-cap/hashmap"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/diamonds/diamonds/game"
)

var players = hashmap.New()
var standings = hashmap.New()
var standingsLock = sync.Mutex{}

// Standing is the running record of one player over every finished game.
type Standing struct {
	ID        int64
	Name      string
	Games     int
	Wins      int
	Losses    int
	Draws     int
	BestScore int
}

func Connected(conn *network.Conn, info *modelx.AuthInfo, ip string) *Player {
	player := &Player{
		ID:    info.ID,
		IP:    ip,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func disconnected(player *Player) {
	if current := GetPlayer(player.ID); current == player {
		players.Del(player.ID)
	}
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func OnlinePlayers() int {
	count := 0
	players.Foreach(func(e *hashmap.Entry) {
		count++
	})
	return count
}

// RecordOutcome folds a finished game into the standing of the player known by
// playerId. name is that player's seat name in the outcome.
func RecordOutcome(playerId int64, name string, outcome game.Outcome) Standing {
	standingsLock.Lock()
	defer standingsLock.Unlock()
	standing := Standing{ID: playerId, Name: name}
	if v, ok := standings.Get(playerId); ok {
		standing = *v.(*Standing)
		standing.Name = name
	}
	score := outcome.Scores[name]
	standing.Games++
	switch {
	case outcome.Draw:
		standing.Draws++
	case outcome.WinnerName == name:
		standing.Wins++
	default:
		standing.Losses++
	}
	if standing.Games == 1 || score > standing.BestScore {
		standing.BestScore = score
	}
	standings.Set(playerId, &standing)
	return standing
}

func GetStanding(playerId int64) (Standing, bool) {
	standingsLock.Lock()
	defer standingsLock.Unlock()
	if v, ok := standings.Get(playerId); ok {
		return *v.(*Standing), true
	}
	return Standing{}, false
}

// GetStandings lists every standing, most wins first.
func GetStandings() []Standing {
	standingsLock.Lock()
	defer standingsLock.Unlock()
	list := make([]Standing, 0)
	standings.Foreach(func(e *hashmap.Entry) {
		list = append(list, *e.Value().(*Standing))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Wins != list[j].Wins {
			return list[i].Wins > list[j].Wins
		}
		if list[i].BestScore != list[j].BestScore {
			return list[i].BestScore > list[j].BestScore
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func ResetStandings() {
	standingsLock.Lock()
	defer standingsLock.Unlock()
	standings = hashmap.New()
}
