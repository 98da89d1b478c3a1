package blackjack

import "math/rand"

type Card struct {
	Rank string
	Suit string
}

var (
	Suits = []string{"♠", "♥", "♦", "♣"}
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Shoe is the multi-deck stack the table draws from.
type Shoe struct {
	cards []Card
}

// NewShoe builds and shuffles decks standard 52-card decks.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	cards := make([]Card, 0, decks*len(Suits)*len(Ranks))
	for i := 0; i < decks; i++ {
		for _, rank := range Ranks {
			for _, suit := range Suits {
				cards = append(cards, Card{Rank: rank, Suit: suit})
			}
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Shoe{cards: cards}
}

// Draw pops the top card.
func (that *Shoe) Draw() Card {
	card := that.cards[len(that.cards)-1]
	that.cards = that.cards[:len(that.cards)-1]

	return card
}

func (that *Shoe) Remaining() int {
	return len(that.cards)
}

type Hand []Card

// Value computes the blackjack total, counting aces as 11 and demoting them
// to 1 while the hand would bust.
func (that Hand) Value() int {
	total := 0
	aces := 0

	for _, card := range that {
		switch card.Rank {
		case "J", "Q", "K", "10":
			total += 10
		case "A":
			aces++
			total += 11
		default:
			total += int(card.Rank[0] - '0')
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsSoft17 reports a 17 that still counts an ace as 11.
func (that Hand) IsSoft17() bool {
	return that.Value() == 17 && that.IsSoft()
}

// IsPair reports a two-card hand of equal ranks.
func (that Hand) IsPair() bool {
	return len(that) == 2 && that[0].Rank == that[1].Rank
}

// IsSoft reports whether the hand counts an ace as 11.
func (that Hand) IsSoft() bool {
	value := 0
	hasAce := false
	for _, card := range that {
		switch card.Rank {
		case "J", "Q", "K", "10":
			value += 10
		case "A":
			hasAce = true
			value += 1
		default:
			value += int(card.Rank[0] - '0')
		}
	}

	return hasAce && value+10 <= 21
}

func (that Hand) IsBust() bool {
	return that.Value() > 21
}
