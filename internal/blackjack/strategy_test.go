package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyAction(t *testing.T) {
	cases := []struct {
		name   string
		hand   Hand
		upcard Card
		want   string
	}{
		{"Always split aces", Hand{card("A"), card("A")}, card("10"), ActionSplit},
		{"Always split eights", Hand{card("8"), card("8")}, card("A"), ActionSplit},
		{"Stand on a pair of tens", Hand{card("10"), card("10")}, card("6"), ActionStand},
		{"Face-card pair counts as tens", Hand{card("K"), card("K")}, card("6"), ActionStand},
		{"Split nines against six", Hand{card("9"), card("9")}, card("6"), ActionSplit},
		{"Stand nines against seven", Hand{card("9"), card("9")}, card("7"), ActionStand},
		{"Hard sixteen hits against ten", Hand{card("10"), card("6")}, card("K"), ActionHit},
		{"Hard sixteen stands against six", Hand{card("10"), card("6")}, card("6"), ActionStand},
		{"Eleven doubles", Hand{card("6"), card("5")}, card("9"), ActionDoubleHit},
		{"Ten hits against ace", Hand{card("6"), card("4")}, card("A"), ActionHit},
		{"Soft eighteen double-stands against three", Hand{card("A"), card("7")}, card("3"), ActionDoubleStand},
		{"Soft eighteen stands against seven", Hand{card("A"), card("7")}, card("7"), ActionStand},
		{"Soft eighteen hits against nine", Hand{card("A"), card("7")}, card("9"), ActionHit},
		{"Soft thirteen doubles against five", Hand{card("A"), card("2")}, card("5"), ActionDoubleHit},
		{"Hard twenty stands", Hand{card("K"), card("4"), card("6")}, card("A"), ActionStand},
		{"Hard twelve hits against two", Hand{card("10"), card("2")}, card("2"), ActionHit},
		{"Hard twelve stands against four", Hand{card("10"), card("2")}, card("4"), ActionStand},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StrategyAction(tc.hand, tc.upcard))
		})
	}
}
