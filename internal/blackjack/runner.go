package blackjack

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Befador/arcade/internal/terminal"
)

const (
	cardWidth  = 9
	cardHeight = 5

	maxAISeats = 5
)

type Runner struct {
	logger *slog.Logger
	screen *terminal.Screen
	rng    *rand.Rand
	decks  int
}

func NewRunner(logger *slog.Logger, screen *terminal.Screen, rng *rand.Rand, decks int) *Runner {
	return &Runner{
		logger: logger.With("component", "blackjack"),
		screen: screen,
		rng:    rng,
		decks:  decks,
	}
}

func (that *Runner) Title() string {
	return "Blackjack"
}

func (that *Runner) Run(ctx context.Context) error {
	that.screen.Clear()
	that.screen.Println(terminal.Title.Sprint(strings.Repeat("=", 60)))
	that.screen.Center(terminal.Warn.Sprint("♠♥ ♣♦   TERMINAL BLACKJACK   ♠♥ ♣♦"))
	that.screen.Println(terminal.Title.Sprint(strings.Repeat("=", 60)))

	variant, err := that.askVariant()
	if err != nil {
		return err
	}

	balance, err := that.askFloat("Enter your starting cash: ", 1)
	if err != nil {
		return err
	}

	aiSeats, err := that.askInt(fmt.Sprintf("Number of AI players (0-%d): ", maxAISeats), 0, maxAISeats)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		balance, err = that.playRound(ctx, variant, balance, aiSeats)
		if err != nil {
			return err
		}

		if balance <= 0 {
			that.screen.Println(terminal.Danger.Sprint("You're out of cash. Thanks for playing!"))
			return that.screen.WaitEnter("Press enter to return to menu...")
		}

		again, err := that.screen.Confirm("Play again? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			that.screen.Println(terminal.Magenta.Sprint("Thanks for playing!"))
			return nil
		}
	}
}

func (that *Runner) playRound(ctx context.Context, variant string, balance float64, aiSeats int) (float64, error) {
	that.screen.Clear()
	that.screen.Println(terminal.Accent.Sprintf("Current Balance: $%.2f", balance))

	bet, err := that.askBet(balance)
	if err != nil {
		return balance, err
	}
	balance -= bet

	shoe := NewShoe(that.decks, that.rng)

	aiHands := make([]Hand, aiSeats)
	for i := range aiHands {
		aiHands[i] = Hand{shoe.Draw(), shoe.Draw()}
	}
	playerHand := Hand{shoe.Draw(), shoe.Draw()}
	dealerHand := Hand{shoe.Draw(), shoe.Draw()}

	that.screen.Clear()
	that.screen.Println(terminal.Magenta.Sprint("Initial deal:"))
	for i, hand := range aiHands {
		that.screen.Println(terminal.Accent.Sprintf("AI Player %d hand:", i+1))
		that.drawHand(hand, false)
	}
	that.screen.Println(terminal.Accent.Sprint("Dealer upcard:"))
	that.drawHand(Hand{dealerHand[1]}, false)
	that.screen.Println(terminal.Accent.Sprint("Your hand:"))
	that.drawHand(playerHand, false)

	if err := that.screen.WaitEnter("Press enter to continue..."); err != nil {
		return balance, err
	}

	// AI seats play basic strategy against the upcard.
	for i := range aiHands {
		if err := ctx.Err(); err != nil {
			return balance, err
		}
		aiHands[i] = that.playAISeat(i+1, aiHands[i], dealerHand[1], shoe)
	}

	playerHand, err = that.playHumanTurn(playerHand, dealerHand, shoe)
	if err != nil {
		return balance, err
	}

	playerTotal := playerHand.Value()
	if playerTotal <= 21 {
		// European tables only reveal the hole card once the player stands.
		if variant == VariantEuropean {
			dealerHand[0] = shoe.Draw()
			that.screen.Println("\nDealer's hole card:")
			that.drawHand(Hand{dealerHand[0]}, false)
		}

		for DealerShouldHit(variant, dealerHand) {
			dealerHand = append(dealerHand, shoe.Draw())
		}

		that.screen.Println("\nDealer's final hand:")
		that.drawHand(dealerHand, false)
	}

	dealerTotal := dealerHand.Value()
	payout := Settle(playerTotal, dealerTotal, bet)
	balance += payout

	switch {
	case payout == bet*2:
		that.screen.Println(terminal.Title.Sprint("You win!"))
	case payout == bet:
		that.screen.Println(terminal.Warn.Sprint("Push."))
	default:
		that.screen.Println(terminal.Danger.Sprint("Dealer wins."))
	}
	that.screen.Println(terminal.Accent.Sprintf("New Balance: $%.2f", balance))

	that.logger.Info("round settled", "player", playerTotal, "dealer", dealerTotal, "bet", bet, "payout", payout)

	return balance, nil
}

func (that *Runner) playAISeat(seat int, hand Hand, upcard Card, shoe *Shoe) Hand {
	that.screen.Printf("\nAI Player %d is playing...\n", seat)

	for {
		action := StrategyAction(hand, upcard)
		if action == ActionHit || action == ActionDoubleHit {
			hand = append(hand, shoe.Draw())
			that.screen.Printf("AI %d hits: new total %d\n", seat, hand.Value())
			that.thinking()
			that.drawHand(hand, false)
			if hand.IsBust() {
				that.screen.Printf("AI %d busts!\n", seat)
				return hand
			}
			continue
		}

		that.thinking()
		that.drawHand(hand, false)
		that.screen.Printf("AI %d stands at %d\n", seat, hand.Value())
		return hand
	}
}

func (that *Runner) playHumanTurn(playerHand, dealerHand Hand, shoe *Shoe) (Hand, error) {
	for {
		that.screen.Println("\nDealer's hand:")
		that.drawHand(dealerHand, true)
		that.screen.Println("\nYour hand:")
		that.drawHand(playerHand, false)

		that.screen.Printf("Your total: %d, Dealer upcard: %d\n", playerHand.Value(), Hand{dealerHand[1]}.Value())
		that.screen.Printf("Suggested: %s\n", StrategyAction(playerHand, dealerHand[1]))

		action, err := that.screen.ReadLine("Choose action ([h]it, [s]tand): ")
		if err != nil {
			return playerHand, err
		}

		switch strings.ToLower(action) {
		case "h":
			playerHand = append(playerHand, shoe.Draw())
			if playerHand.IsBust() {
				that.screen.Println(terminal.Danger.Sprint("\nYou busted!"))
				return playerHand, nil
			}
		case "s":
			return playerHand, nil
		default:
			that.screen.Println("Invalid input, please enter 'h' or 's'.")
		}
	}
}

func (that *Runner) askVariant() (string, error) {
	for {
		variant, err := that.screen.ReadLine("Choose variant [American(us)/European(eu)]: ")
		if err != nil {
			return "", err
		}

		switch strings.ToLower(variant) {
		case "us", "american":
			return VariantAmerican, nil
		case "eu", "european":
			return VariantEuropean, nil
		}
	}
}

func (that *Runner) askBet(balance float64) (float64, error) {
	for {
		bet, err := that.askFloat("Enter your bet amount: ", 0.01)
		if err != nil {
			return 0, err
		}

		if bet > balance {
			that.screen.Println("Invalid bet. Must be >0 and <= balance.")
			continue
		}

		return bet, nil
	}
}

func (that *Runner) askFloat(prompt string, min float64) (float64, error) {
	for {
		answer, err := that.screen.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.ParseFloat(answer, 64)
		if convErr != nil || value < min {
			that.screen.Println("Enter a numeric value.")
			continue
		}

		return value, nil
	}
}

func (that *Runner) askInt(prompt string, min, max int) (int, error) {
	for {
		answer, err := that.screen.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.Atoi(answer)
		if convErr != nil || value < min || value > max {
			that.screen.Printf("Enter a number between %d and %d.\n", min, max)
			continue
		}

		return value, nil
	}
}

func (that *Runner) thinking() {
	that.screen.Print("AI thinking...")
	that.screen.Pause(300 * time.Millisecond)
	that.screen.Print("\r" + strings.Repeat(" ", 20) + "\r")
}

// drawHand prints a hand as side-by-side ASCII cards, optionally hiding the
// dealer's first card.
func (that *Runner) drawHand(hand Hand, hideFirst bool) {
	lines := make([]string, cardHeight)

	for idx, card := range hand {
		var art []string
		if idx == 0 && hideFirst {
			art = faceDownCard()
		} else {
			art = drawCard(card)
		}
		for i := 0; i < cardHeight; i++ {
			lines[i] += art[i] + " "
		}
	}

	that.screen.Println(strings.Join(lines, "\n"))
}

func drawCard(card Card) []string {
	inner := cardWidth - 2

	top := card.Rank
	if len(top) == 1 {
		top += " "
	}
	bottom := card.Rank
	if len(bottom) == 1 {
		bottom = " " + bottom
	}

	left := (inner - 1) / 2
	right := inner - 1 - left

	return []string{
		"┌" + strings.Repeat("─", inner) + "┐",
		"│" + top + strings.Repeat(" ", inner-len(top)) + "│",
		"│" + strings.Repeat(" ", left) + card.Suit + strings.Repeat(" ", right) + "│",
		"│" + strings.Repeat(" ", inner-len(bottom)) + bottom + "│",
		"└" + strings.Repeat("─", inner) + "┘",
	}
}

func faceDownCard() []string {
	inner := cardWidth - 2

	return []string{
		"┌" + strings.Repeat("─", inner) + "┐",
		"│" + strings.Repeat("░", inner) + "│",
		"│" + strings.Repeat("░", inner) + "│",
		"│" + strings.Repeat("░", inner) + "│",
		"└" + strings.Repeat("─", inner) + "┘",
	}
}
