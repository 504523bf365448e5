package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"star/engine"
	"star/experiments/metrics"
	"star/searcher"

	"github.com/rs/zerolog/log"
)

var (
	ErrBadSeat  = errors.New("seat must be 0 or 1")
	ErrBadToken = errors.New("malformed token")
)

type Config struct {
	Size   int
	Komi   int
	Budget engine.Budget
	Seed   uint64
}

// Player speaks the line protocol: a seat token (0 moves first, 1 moves second), then
// coordinates exchanged one number per line, x before y.
type Player struct {
	config Config
	mcts   *searcher.MCTS
	in     *bufio.Scanner
	out    *bufio.Writer
}

func NewPlayer(config Config, in io.Reader, out io.Writer) (*Player, error) {
	mcts, err := engine.NewSearcher(config.Size, metrics.AgentConfig{Seed: config.Seed})
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Player{
		config: config,
		mcts:   mcts,
		in:     scanner,
		out:    bufio.NewWriter(out),
	}, nil
}

// Run plays until the game is decided or the input ends.
func Run(ctx context.Context, config Config, in io.Reader, out io.Writer) error {
	p, err := NewPlayer(config, in, out)
	if err != nil {
		return err
	}
	return p.Play(ctx)
}

func (p *Player) Play(ctx context.Context) error {
	seat, ok, err := p.readInt()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if seat != 0 && seat != 1 {
		return fmt.Errorf("%w: got %d", ErrBadSeat, seat)
	}
	log.Info().Msgf("playing seat %d on a size %d board", seat, p.config.Size)

	if seat == 0 {
		if err := p.move(ctx); err != nil {
			return err
		}
	}

	for !p.mcts.Finished(p.config.Komi) {
		x, y, ok, err := p.readMove()
		if err != nil {
			return err
		}
		if !ok {
			log.Info().Msg("input closed")
			return nil
		}
		if err := p.mcts.AddMove(x, y); err != nil {
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
		log.Info().Msgf("game over, winner: %s", winner)
	}
	return nil
}

// move searches, plays and announces the engine's move.
func (p *Player) move(ctx context.Context) error {
	n, err := engine.Think(ctx, p.mcts, p.config.Budget, p.config.Komi)
	if err != nil {
		return err
	}
	x, y, err := p.mcts.BestMove()
	if err != nil {
		return err
	}
	if err := p.mcts.AddMove(x, y); err != nil {
		return err
	}
	log.Debug().Msgf("played (%d, %d) after %d iterations", x, y, n)

	fmt.Fprintf(p.out, "%d\n%d\n", x, y)
	return p.out.Flush()
}

func (p *Player) readMove() (x, y int, ok bool, err error) {
	x, ok, err = p.readInt()
	if err != nil || !ok {
		return 0, 0, ok, err
	}
	y, ok, err = p.readInt()
	if err != nil {
		return 0, 0, false, err
	}
	if !ok {
		return 0, 0, false, fmt.Errorf("%w: missing y coordinate", ErrBadToken)
	}
	return x, y, true, nil
}

// readInt returns false once the input is exhausted.
func (p *Player) readInt() (int, bool, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return 0, false, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, false, nil
	}
	v, err := strconv.Atoi(p.in.Text())
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadToken, p.in.Text())
	}
	return v, true, nil
}
