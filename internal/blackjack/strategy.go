package blackjack

// Basic-strategy actions. Dh/Ds mean "double, else hit/stand" for players
// who cannot double anymore.
const (
	ActionHit         = "H"
	ActionStand       = "S"
	ActionDoubleHit   = "Dh"
	ActionDoubleStand = "Ds"
	ActionSplit       = "P"
)

// Dealer upcards indexed by the strategy tables.
var upcards = []string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "A"}

var (
	hardStrategy = map[int]map[string]string{
		5:  allUpcards(ActionHit),
		6:  allUpcards(ActionHit),
		7:  allUpcards(ActionHit),
		8:  allUpcards(ActionHit),
		9:  override(allUpcards(ActionHit), ActionDoubleHit, "3", "4", "5", "6"),
		10: override(allUpcards(ActionDoubleHit), ActionHit, "T", "A"),
		11: allUpcards(ActionDoubleHit),
		12: override(allUpcards(ActionHit), ActionStand, "4", "5", "6"),
		13: override(allUpcards(ActionHit), ActionStand, "2", "3", "4", "5", "6"),
		14: override(allUpcards(ActionHit), ActionStand, "2", "3", "4", "5", "6"),
		15: override(allUpcards(ActionHit), ActionStand, "2", "3", "4", "5", "6"),
		16: override(allUpcards(ActionHit), ActionStand, "2", "3", "4", "5", "6"),
		17: allUpcards(ActionStand),
		18: allUpcards(ActionStand),
		19: allUpcards(ActionStand),
		20: allUpcards(ActionStand),
		21: allUpcards(ActionStand),
	}

	softStrategy = map[int]map[string]string{
		13: override(allUpcards(ActionHit), ActionDoubleHit, "5", "6"),
		14: override(allUpcards(ActionHit), ActionDoubleHit, "4", "5", "6"),
		15: override(allUpcards(ActionHit), ActionDoubleHit, "4", "5", "6"),
		16: override(allUpcards(ActionHit), ActionDoubleHit, "4", "5", "6"),
		17: override(allUpcards(ActionHit), ActionDoubleHit, "3", "4", "5", "6"),
		18: override(override(allUpcards(ActionHit), ActionDoubleStand, "3", "4", "5", "6"), ActionStand, "2", "7", "8"),
		19: allUpcards(ActionStand),
		20: allUpcards(ActionStand),
	}

	pairStrategy = map[string]map[string]string{
		"A": allUpcards(ActionSplit),
		"T": allUpcards(ActionStand),
		"9": override(allUpcards(ActionStand), ActionSplit, "2", "3", "4", "5", "6", "8", "9"),
		"8": allUpcards(ActionSplit),
		"7": override(allUpcards(ActionHit), ActionSplit, "2", "3", "4", "5", "6", "7"),
		"6": override(allUpcards(ActionHit), ActionSplit, "2", "3", "4", "5", "6"),
		"5": override(allUpcards(ActionHit), ActionDoubleHit, "2", "3", "4", "5", "6", "7", "8", "9"),
		"4": override(allUpcards(ActionHit), ActionSplit, "5", "6"),
		"3": override(allUpcards(ActionHit), ActionSplit, "2", "3", "4", "5", "6", "7"),
		"2": override(allUpcards(ActionHit), ActionSplit, "2", "3", "4", "5", "6"),
	}
)

func allUpcards(action string) map[string]string {
	row := make(map[string]string, len(upcards))
	for _, up := range upcards {
		row[up] = action
	}
	return row
}

func override(row map[string]string, action string, ups ...string) map[string]string {
	for _, up := range ups {
		row[up] = action
	}
	return row
}

// StrategyAction looks up the basic-strategy move for hand against the
// dealer's upcard. Pairs are checked first, then soft totals, then hard.
func StrategyAction(hand Hand, upcard Card) string {
	up := normalizeUpcard(upcard)

	if hand.IsPair() {
		rank := hand[0].Rank
		if rank == "10" || rank == "J" || rank == "Q" || rank == "K" {
			rank = "T"
		}
		if row, ok := pairStrategy[rank]; ok {
			return rowAction(row, up)
		}
	}

	total := hand.Value()
	if hand.IsSoft() && total <= 20 {
		if row, ok := softStrategy[total]; ok {
			return rowAction(row, up)
		}
	}

	if row, ok := hardStrategy[total]; ok {
		return rowAction(row, up)
	}

	return ActionHit
}

func rowAction(row map[string]string, up string) string {
	if action, ok := row[up]; ok {
		return action
	}
	return ActionHit
}

func normalizeUpcard(card Card) string {
	switch card.Rank {
	case "10", "J", "Q", "K", "T":
		return "T"
	default:
		return card.Rank
	}
}
