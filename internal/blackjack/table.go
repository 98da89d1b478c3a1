package blackjack

const (
	VariantAmerican = "us"
	VariantEuropean = "eu"
)

// DealerShouldHit encodes the variant rule: American dealers hit soft 17,
// European dealers stand on it.
func DealerShouldHit(variant string, hand Hand) bool {
	value := hand.Value()

	if variant == VariantAmerican {
		return value < 17 || hand.IsSoft17()
	}

	return value < 17
}

// Settle returns the balance delta for a resolved round. The bet was taken
// when placed, so a win returns twice the stake and a push returns it.
func Settle(playerTotal, dealerTotal int, bet float64) float64 {
	switch {
	case playerTotal > 21:
		return 0
	case dealerTotal > 21 || playerTotal > dealerTotal:
		return bet * 2
	case playerTotal == dealerTotal:
		return bet
	default:
		return 0
	}
}
