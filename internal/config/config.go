package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"ARCADE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file"  env:"ARCADE_LOG_FILE"  env-default:"arcade.log"`
	Games    Games  `yaml:"games"`
}

type Games struct {
	TicTacToe  TicTacToe  `yaml:"tictactoe"`
	Snake      Snake      `yaml:"snake"`
	Hangman    Hangman    `yaml:"hangman"`
	Mastermind Mastermind `yaml:"mastermind"`
	RPS        RPS        `yaml:"rps"`
	Blackjack  Blackjack  `yaml:"blackjack"`
	Roulette   Roulette   `yaml:"roulette"`
}

type TicTacToe struct {
	// Noise is the probability that the bot plays a uniformly random legal
	// move instead of the minimax-optimal one.
	Noise float64 `yaml:"noise" env:"ARCADE_TTT_NOISE" env-default:"0.2"`
}

type Snake struct {
	Width  int `yaml:"width"   env:"ARCADE_SNAKE_WIDTH"  env-default:"40"`
	Height int `yaml:"height"  env:"ARCADE_SNAKE_HEIGHT" env-default:"20"`
	TickMS int `yaml:"tick-ms" env:"ARCADE_SNAKE_TICK"   env-default:"90"`
}

type Hangman struct {
	MaxTries int `yaml:"max-tries" env:"ARCADE_HANGMAN_TRIES" env-default:"6"`
}

type Mastermind struct {
	CodeLength int `yaml:"code-length" env:"ARCADE_MASTERMIND_LEN" env-default:"4"`
}

type RPS struct {
	Rounds int `yaml:"rounds" env:"ARCADE_RPS_ROUNDS" env-default:"5"`
}

type Blackjack struct {
	Decks int `yaml:"decks" env:"ARCADE_BLACKJACK_DECKS" env-default:"6"`
}

type Roulette struct {
	MinBet int `yaml:"min-bet" env:"ARCADE_ROULETTE_MIN_BET" env-default:"10"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine for the arcade: defaults and environment overrides apply instead.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err := cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config defaults: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
