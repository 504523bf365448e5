package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"star/engine"
	"star/experiments/metrics"
	"star/game"
	"star/searcher"

	"github.com/rs/zerolog/log"
)

// Interactive plays against a human at a terminal. The first line picks the engine's seat
// as in the line protocol; moves are then typed as "x y" with 1-based coordinates. The board
// and both scores are printed after every move.
type Interactive struct {
	config Config
	mcts   *searcher.MCTS
	in     *bufio.Scanner
	out    *bufio.Writer
}

func NewInteractive(config Config, in io.Reader, out io.Writer) (*Interactive, error) {
	mcts, err := engine.NewSearcher(config.Size, metrics.AgentConfig{Seed: config.Seed})
	if err != nil {
		return nil, err
	}
	return &Interactive{
		config: config,
		mcts:   mcts,
		in:     bufio.NewScanner(in),
		out:    bufio.NewWriter(out),
	}, nil
}

// RunInteractive plays until the game is decided or the input ends.
func RunInteractive(ctx context.Context, config Config, in io.Reader, out io.Writer) error {
	p, err := NewInteractive(config, in, out)
	if err != nil {
		return err
	}
	return p.Play(ctx)
}

func (p *Interactive) Play(ctx context.Context) error {
	defer p.out.Flush()

	seat, ok, err := p.readSeat()
	if err != nil || !ok {
		return err
	}
	log.Info().Msgf("engine plays seat %d on a size %d board", seat, p.config.Size)

	if seat == 0 {
		if err := p.move(ctx); err != nil {
			return err
		}
	} else if err := p.show(); err != nil {
		return err
	}

	for !p.mcts.Finished(p.config.Komi) {
		x, y, ok, err := p.readMove()
		if err != nil || !ok {
			return err
		}
		log.Debug().Msgf("human played (%d, %d)", x, y)
		if err := p.show(); err != nil {
			return err
		}
		if p.mcts.Finished(p.config.Komi) {
			break
		}
		if err := p.move(ctx); err != nil {
			return err
		}
	}

	if winner, ok := p.mcts.Winner(p.config.Komi); ok {
		fmt.Fprintf(p.out, "Winner: %s\n", winner)
	} else {
		fmt.Fprintln(p.out, "No winner")
	}
	return p.out.Flush()
}

// move searches and plays the engine's move, then shows the position.
func (p *Interactive) move(ctx context.Context) error {
	if _, err := engine.Think(ctx, p.mcts, p.config.Budget, p.config.Komi); err != nil {
		return err
	}
	x, y, err := p.mcts.BestMove()
	if err != nil {
		return err
	}
	if err := p.mcts.AddMove(x, y); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Engine plays %d %d\n", x+1, y+1)
	return p.show()
}

func (p *Interactive) show() error {
	if err := p.mcts.PrintBoard(p.out); err != nil {
		return err
	}
	for _, player := range game.Players {
		fmt.Fprintf(p.out, "%s: %d\n", player, p.mcts.Score(player, p.config.Komi))
	}
	return p.out.Flush()
}

// readSeat asks until it gets 0 or 1.
func (p *Interactive) readSeat() (int, bool, error) {
	for {
		fmt.Fprint(p.out, "Engine seat (0 moves first, 1 moves second): ")
		line, ok, err := p.readLine()
		if err != nil || !ok {
			return 0, false, err
		}
		seat, err := strconv.Atoi(line)
		if err == nil && (seat == 0 || seat == 1) {
			return seat, true, nil
		}
		fmt.Fprintln(p.out, "You must input 0 or 1")
	}
}

// readMove asks until a legal move is typed and plays it. Coordinates are returned
// 0-based.
func (p *Interactive) readMove() (int, int, bool, error) {
	for {
		fmt.Fprint(p.out, "Your move (x y): ")
		line, ok, err := p.readLine()
		if err != nil || !ok {
			return 0, 0, false, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintln(p.out, "You must input two numbers")
			continue
		}
		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			fmt.Fprintln(p.out, "You must input two numbers")
			continue
		}

		switch err := p.mcts.AddMove(x-1, y-1); {
		case errors.Is(err, searcher.ErrInvalidCoord):
			fmt.Fprintln(p.out, "That point is not on the board")
		case errors.Is(err, searcher.ErrOccupied):
			fmt.Fprintln(p.out, "That point is already taken")
		case err != nil:
			return 0, 0, false, err
		default:
			return x - 1, y - 1, true, nil
		}
	}
}

// readLine flushes pending prompts and returns false once the input is exhausted.
func (p *Interactive) readLine() (string, bool, error) {
	if err := p.out.Flush(); err != nil {
		return "", false, err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", false, nil
	}
	return strings.TrimSpace(p.in.Text()), true, nil
}
