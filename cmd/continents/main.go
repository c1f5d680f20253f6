package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/Continents/internal/config"
	"github.com/mitchelldurbincs/Continents/internal/game"
	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
	"github.com/mitchelldurbincs/Continents/internal/game/events"
	"github.com/mitchelldurbincs/Continents/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/Continents/internal/game/mapgen"
	"github.com/mitchelldurbincs/Continents/internal/planner"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay (loads config.<env>.yaml)")
	seed := flag.Int64("seed", 0, "Match seed (0 to use config, then the clock)")
	rollouts := flag.Int("rollouts", -1, "Planner rollouts per option (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	quiet := flag.Bool("quiet", false, "Only print the final result")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	if err := applyFlagOverrides(*seed, *rollouts, *logLevel); err != nil {
		log.Fatal().Err(err).Msg("Invalid flag")
	}
	cfg := config.Get()
	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	matchSeed := cfg.Match.Seed
	if matchSeed == 0 {
		matchSeed = time.Now().UnixNano()
	}

	if *watch {
		config.WatchConfig(func(c *config.Config) {
			log.Info().
				Str("file", config.ConfigFilePath()).
				Int("rollouts", c.Planner.Rollouts).
				Msg("Config reloaded, changes apply to the next match")
		}, func(err error) {
			log.Warn().Err(err).Msg("Config reload rejected")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := newMatch(ctx, cfg, matchSeed)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create match")
	}

	p := planner.New(
		planner.WithRollouts(cfg.Planner.Rollouts),
		planner.WithMaxPlayoutSteps(cfg.Planner.MaxPlayoutSteps),
		planner.WithSeed(matchSeed+1),
		planner.WithLogger(log.Logger),
		planner.WithMetrics(),
	)

	log.Info().
		Str("match_id", m.ID()).
		Int64("seed", matchSeed).
		Int("rollouts", cfg.Planner.Rollouts).
		Msg("Starting match")

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if err := run(ctx, m, p, bufio.NewScanner(os.Stdin), out, !*quiet); err != nil {
		out.Flush()
		log.Fatal().Err(err).Msg("Match aborted")
	}

	gs := m.State()
	fmt.Fprintf(out, "\nFinal board:\n%s\n%s", gs.Render(false), gs.Summary())
	names := make([]string, 0, len(gs.Winners()))
	for _, w := range gs.Winners() {
		pl, _ := gs.Player(w)
		names = append(names, pl.Name)
	}
	fmt.Fprintf(out, "Winners: %s\n", strings.Join(names, ", "))
}

// applyFlagOverrides layers the command line values that were given over the
// loaded config.
func applyFlagOverrides(seed int64, rollouts int, logLevel string) error {
	if seed != 0 {
		if err := config.Set("match.seed", seed); err != nil {
			return err
		}
	}
	if rollouts != -1 {
		if err := config.Set("planner.rollouts", rollouts); err != nil {
			return err
		}
	}
	if logLevel != "" {
		if err := config.Set("logging.level", logLevel); err != nil {
			return err
		}
	}
	return nil
}

func newMatch(ctx context.Context, cfg *config.Config, seed int64) (*game.Match, error) {
	rng := rand.New(rand.NewSource(seed))

	deck, err := loadDeck(cfg.Match.DeckFile)
	if err != nil {
		return nil, err
	}

	layout := cfg.Match.Layout
	if len(layout) == 0 {
		gen := mapgen.NewGenerator(mapgen.DefaultLayoutConfig(cfg.Match.Width, cfg.Match.Height), rng)
		layout = gen.GenerateLayout()
	}

	players := make([]game.Player, len(cfg.Match.Players))
	for i, pc := range cfg.Match.Players {
		kind, err := game.ParsePlayerKind(pc.Kind)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		players[i] = game.Player{Name: pc.Name, Kind: kind}
	}

	settings := game.Settings{
		StartingArmies: cfg.Match.StartingArmies,
		MaxArmies:      cfg.Match.MaxArmies,
		MaxCities:      cfg.Match.MaxCities,
		MaxTurns:       cfg.Match.MaxTurns,
		OfferSize:      cfg.Match.OfferSize,
	}
	for _, t := range cfg.Match.StartTiles {
		settings.StartTiles = append(settings.StartTiles, core.NewCoordinate(t.X, t.Y))
	}

	bus := events.NewEventBus(log.Logger)
	bus.Subscribe(subscribers.NewLoggerSubscriber("event-log", log.Logger, zerolog.DebugLevel))

	return game.NewMatch(ctx, game.MatchConfig{
		Layout:   layout,
		Players:  players,
		Deck:     deck,
		Settings: settings,
		Rng:      rng,
		Logger:   log.Logger,
		EventBus: bus,
	})
}

func loadDeck(path string) (cards.Deck, error) {
	if path == "" {
		return cards.DefaultDeck()
	}
	deck, err := cards.LoadDeck(path)
	if err != nil {
		return cards.Deck{}, fmt.Errorf("load deck: %w", err)
	}
	return deck, nil
}

// run plays the match to the end, asking the planner for automated seats
// and the terminal for human ones. The board is printed whenever play
// passes to another seat.
func run(ctx context.Context, m *game.Match, d game.Decider, in *bufio.Scanner, out *bufio.Writer, verbose bool) error {
	gs := m.State()
	if verbose {
		fmt.Fprintf(out, "%s\n%s", gs.Render(true), gs.Summary())
	}
	for !m.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		active := gs.ActivePlayer()
		seat, _ := gs.Player(active)

		if seat.Kind == game.Human {
			out.Flush()
			if err := humanStep(m, in, out); err != nil {
				return err
			}
		} else if opt, ok := m.Step(d); ok && verbose {
			fmt.Fprintf(out, "%s: %s\n", seat.Name, opt)
		}

		if verbose && gs.ActivePlayer() != active && !m.IsOver() {
			fmt.Fprintf(out, "\n%s\n%s", gs.Render(true), gs.Summary())
		}
	}
	return nil
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
