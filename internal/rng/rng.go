package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Shuffle performs a Fisher-Yates shuffle over n elements using the
// provided generator
func Shuffle(gen Generator, n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		swap(i, j)
	}
}
