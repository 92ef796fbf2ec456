package game

import "math/rand/v2"

// SuccessMessages is the default pool of win messages.
var SuccessMessages = []string{
	"His seafood is so fresh it'll slap ya.",
	"Shut the Front Door.",
	"We're Riding the Bus to Flavortown!",
	"Dude, I've been stricken by chicken!",
	"What a hot frisbee of fun!",
	"Some people are just born to cook and talk.",
	"I can't play the guitar, but I can play the griddle.",
}

// DefaultWinMessage is used when the message pool is empty.
const DefaultWinMessage = "You win!"

// RandomSuccessMessage picks one message from pool.
func RandomSuccessMessage(rng *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return DefaultWinMessage
	}
	return pool[rng.IntN(len(pool))]
}
