// Package console runs an interactive game over a line based reader and writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/mitchelldurbincs/proxx/internal/common"
	"github.com/mitchelldurbincs/proxx/internal/game"
	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/mitchelldurbincs/proxx/internal/game/events"
	"github.com/mitchelldurbincs/proxx/internal/game/mapgen"
	"github.com/mitchelldurbincs/proxx/internal/game/states"
	"github.com/rs/zerolog"
)

const clearScreen = "\033[H\033[2J"

// ErrInputClosed is returned when input ends before the game does
var ErrInputClosed = errors.New("input closed before the game ended")

// Options configures a console session
type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger zerolog.Logger

	// Optional game wiring, passed through to game.GameConfig
	Rng      *rand.Rand
	Placer   mapgen.Placer
	EventBus *events.EventBus

	// Difficulty skips the menu when set
	Difficulty *game.Difficulty

	ClearScreen       bool
	Color             bool
	PauseBetweenMoves bool
}

// Console drives one game from prompts to the final cell report
type Console struct {
	opts    Options
	scanner *bufio.Scanner
	out     io.Writer
	logger  zerolog.Logger
}

// New creates a console session
func New(opts Options) *Console {
	return &Console{
		opts:    opts,
		scanner: bufio.NewScanner(opts.In),
		out:     opts.Out,
		logger:  opts.Logger.With().Str("component", "console").Logger(),
	}
}

// Run plays a single game and returns the phase it ended in.
// It returns ErrInputClosed if the input runs out first.
func (c *Console) Run(ctx context.Context) (states.GamePhase, error) {
	c.printWelcome()

	difficulty, err := c.chooseDifficulty()
	if err != nil {
		return states.PhaseInProgress, err
	}

	engine, err := c.newEngine(ctx, difficulty)
	if err != nil {
		return states.PhaseInProgress, err
	}

	c.logger.Info().
		Str("game_id", engine.GameID()).
		Str("difficulty", difficulty.String()).
		Msg("Console game started")

	c.clear()
	validator := common.NewPositionValidator(engine.Width(), engine.Height())

	for {
		if err := ctx.Err(); err != nil {
			return engine.Phase(), err
		}

		fmt.Fprint(c.out, game.RenderBoard(engine.Board(), false, c.opts.Color))

		pos, err := c.readPosition(validator)
		if err != nil {
			return engine.Phase(), err
		}

		result, err := engine.Reveal(pos)
		if err != nil {
			// Input is validated above, so only a finished game gets here
			return engine.Phase(), err
		}
		opened := result.Cell.Position

		if result.WasMine {
			fmt.Fprintf(c.out, "The cell %s is a hole! Sorry! You lose! Please, be careful next time :)\n", opened)
			fmt.Fprint(c.out, game.FormatCellStates(result.Revealed))
			fmt.Fprint(c.out, game.RenderBoard(engine.Board(), true, c.opts.Color))
			return engine.Phase(), nil
		}

		fmt.Fprintf(c.out, "You opened the cell with position: %s. Adjacent Holes: %d\n", opened, result.Cell.AdjacentMines)

		if result.Victory {
			fmt.Fprintln(c.out, "CONGRATULATIONS! YOU WIN!")
			fmt.Fprint(c.out, game.FormatCellStates(result.Revealed))
			return engine.Phase(), nil
		}

		fmt.Fprint(c.out, game.FormatCellStates(result.Revealed))
		if c.opts.PauseBetweenMoves {
			if _, err := c.readLine("Press enter to continue..."); err != nil {
				return engine.Phase(), err
			}
		}
		c.clear()
	}
}

func (c *Console) printWelcome() {
	easy := game.PresetFor(game.DifficultyEasy)
	medium := game.PresetFor(game.DifficultyMedium)
	hard := game.PresetFor(game.DifficultyHard)

	fmt.Fprintln(c.out, "Welcome to the Proxx Game!")
	if c.opts.Difficulty != nil {
		return
	}
	fmt.Fprintln(c.out, "Please, pick the game mode to play: ")
	fmt.Fprintf(c.out, "\t0 - Easy (Board %dx%d with %d black holes)\n", easy.Width, easy.Height, easy.Mines)
	fmt.Fprintf(c.out, "\t1 - Medium (Board %dx%d with %d black holes)\n", medium.Width, medium.Height, medium.Mines)
	fmt.Fprintf(c.out, "\t2 - Hard (Board %dx%d with %d black holes)\n", hard.Width, hard.Height, hard.Mines)
	fmt.Fprintln(c.out, "\t3 - Custom (You configure the board size and number of black holes)")
	fmt.Fprintln(c.out)
}

// chooseDifficulty reads a menu number. Numbers outside the menu pick
// game.default_difficulty.
func (c *Console) chooseDifficulty() (game.Difficulty, error) {
	if c.opts.Difficulty != nil {
		return *c.opts.Difficulty, nil
	}

	for {
		line, err := c.readLine("Your choice: ")
		if err != nil {
			return game.DifficultyMedium, err
		}

		n, err := common.ParseBoundedInt(line, int(game.DifficultyEasy), int(game.DifficultyCustom))
		switch {
		case err == nil:
			return game.Difficulty(n), nil
		case errors.Is(err, common.ErrOutOfRange):
			fallback := game.DefaultDifficulty()
			c.logger.Debug().Err(err).Str("fallback", fallback.String()).Msg("Unknown game mode")
			return fallback, nil
		default:
			fmt.Fprintln(c.out, "Wrong game mode :( Please, input a number from 0 to 3.")
		}
	}
}

// newEngine builds the game, asking again for custom settings the engine rejects
func (c *Console) newEngine(ctx context.Context, difficulty game.Difficulty) (*game.Engine, error) {
	for {
		cfg := game.PresetFor(difficulty)
		if difficulty == game.DifficultyCustom {
			var err error
			if cfg, err = c.readCustomSettings(); err != nil {
				return nil, err
			}
		}

		cfg.Rng = c.opts.Rng
		cfg.Placer = c.opts.Placer
		cfg.EventBus = c.opts.EventBus
		cfg.Logger = c.opts.Logger

		engine, err := game.NewEngine(ctx, cfg)
		if err == nil {
			fmt.Fprintf(c.out, "Starting %s game: %dx%d with %d black holes\n", difficulty, cfg.Width, cfg.Height, cfg.Mines)
			return engine, nil
		}

		var cfgErr *core.ConfigError
		if difficulty != game.DifficultyCustom || !errors.As(err, &cfgErr) {
			return nil, err
		}
		fmt.Fprintf(c.out, "Wrong game settings: %v. Please, try again.\n", cfgErr)
	}
}

func (c *Console) readCustomSettings() (game.GameConfig, error) {
	fmt.Fprintln(c.out)

	rows, err := c.readInt("Please, input the number of rows: ")
	if err != nil {
		return game.GameConfig{}, err
	}
	columns, err := c.readInt("Please, input the number of columns: ")
	if err != nil {
		return game.GameConfig{}, err
	}
	mines, err := c.readInt("Please, input the number of black holes: ")
	if err != nil {
		return game.GameConfig{}, err
	}

	return game.GameConfig{Width: columns, Height: rows, Mines: mines}, nil
}

// readPosition asks for X and Y until they name a cell on the board
func (c *Console) readPosition(v common.PositionValidator) (core.Position, error) {
	for {
		fmt.Fprintf(c.out, "Please, input the cell to open (input from 0 to %d for X and from 0 to %d for Y): \n",
			v.Width-1, v.Height-1)

		x, err := c.readLine("X: ")
		if err != nil {
			return core.Position{}, err
		}
		y, err := c.readLine("Y: ")
		if err != nil {
			return core.Position{}, err
		}

		pos, err := v.Parse(x, y)
		switch {
		case err == nil:
			return pos, nil
		case errors.Is(err, common.ErrInvalidNumber):
			fmt.Fprintln(c.out, "Wrong type of input data! Please, input the integer values for X and Y cell position.")
		default:
			fmt.Fprintf(c.out, "Wrong ranges of input data! The correct ranges: from 0 to %d for X and from 0 to %d for Y.\n",
				v.Width-1, v.Height-1)
		}
		c.logger.Debug().Err(err).Str("x", x).Str("y", y).Msg("Rejected position input")
	}
}

func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := common.ParseInt(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Wrong type of input data! Please, input an integer value.")
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return c.scanner.Text(), nil
}

func (c *Console) clear() {
	if c.opts.ClearScreen {
		fmt.Fprint(c.out, clearScreen)
	}
}
