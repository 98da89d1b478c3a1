package hangman

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"unicode"
)

const hintCost = 3

// Game is one hangman round: a secret word, the guessed letters, and the
// count of wrong tries.
type Game struct {
	Word     string
	Hint     string
	Guessed  map[rune]bool
	Tries    int
	MaxTries int
	HintUsed bool
}

var errUnknownLanguage = fmt.Errorf("unknown language")

// NewGame picks a random word for language and starts a round.
func NewGame(language string, maxTries int, rng *rand.Rand) (*Game, error) {
	dict, ok := dictionaries[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownLanguage, language)
	}

	words := make([]string, 0, len(dict))
	for word := range dict {
		words = append(words, word)
	}
	sort.Strings(words) // map order is random; keep selection seed-stable

	word := words[rng.Intn(len(words))]

	return &Game{
		Word:     word,
		Hint:     dict[word],
		Guessed:  make(map[rune]bool),
		MaxTries: maxTries,
	}, nil
}

// Guess registers a single letter. Non-letters, multi-rune input and repeats
// are ignored without costing a try; a miss costs one.
func (that *Game) Guess(input string) {
	runes := []rune(strings.ToUpper(strings.TrimSpace(input)))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return
	}

	letter := runes[0]
	if that.Guessed[letter] {
		return
	}

	that.Guessed[letter] = true
	if !strings.ContainsRune(that.Word, letter) {
		that.Tries++
	}
}

// UseHint reveals the hint for the price of three tries. It is refused when
// already used or when the player cannot afford it.
func (that *Game) UseHint() bool {
	if that.HintUsed || that.Tries > that.MaxTries-hintCost {
		return false
	}

	that.HintUsed = true
	that.Tries += hintCost

	return true
}

// Masked renders the word with unguessed letters as underscores.
func (that *Game) Masked() string {
	parts := make([]string, 0, len(that.Word))
	for _, r := range that.Word {
		if that.Guessed[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}

	return strings.Join(parts, " ")
}

// GuessedLetters returns the guesses so far, sorted for display.
func (that *Game) GuessedLetters() []string {
	letters := make([]string, 0, len(that.Guessed))
	for r := range that.Guessed {
		letters = append(letters, string(r))
	}
	sort.Strings(letters)

	return letters
}

func (that *Game) Won() bool {
	for _, r := range that.Word {
		if !that.Guessed[r] {
			return false
		}
	}
	return true
}

func (that *Game) Lost() bool {
	return that.Tries >= that.MaxTries && !that.Won()
}

func (that *Game) Finished() bool {
	return that.Won() || that.Tries >= that.MaxTries
}
