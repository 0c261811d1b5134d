package rng

// Generator is the source of randomness for shuffles
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
