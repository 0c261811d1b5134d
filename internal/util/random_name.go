package util

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var adjectives = []string{
	"Lucky", "Golden", "Silver", "Velvet", "Midnight", "Neon", "Royal", "High", "Low", "Wild", "Quiet",
	"Red", "Blue", "Green", "Black", "Emerald", "Crimson", "Smiling", "Grand", "Ultimate", "Prime",
	"Shuffling", "Dealing", "Doubling", "Splashy", "Hot", "Cold", "Steady", "Bold", "Rolling",
}

var nouns = []string{
	"Ace", "King", "Queen", "Jack", "Deuce", "Shoe", "Chip", "Felt", "Pit", "Stack", "Hand", "Table",
	"Dealer", "Croupier", "Lounge", "Parlor", "Saloon", "Riverboat", "Casino", "Card", "Bet", "Stake",
}

var (
	random     = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
	randomLock sync.Mutex
)

// GetRandomName returns a random table name by combining an adjective with a noun
func GetRandomName() string {
	randomLock.Lock()
	defer randomLock.Unlock()

	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
