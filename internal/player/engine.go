package player

import (
	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/search"
)

// EngineOptions configures a new Engine player.
type EngineOptions struct {
	Name    string
	Search  search.Options
	Log     search.Logger
	BuildTC func(pos *board.Position) *search.TimeControl
}

// Engine is the Player backed by the alpha-beta search kernel.
type Engine struct {
	name    string
	eng     *search.Engine
	buildTC func(pos *board.Position) *search.TimeControl
}

// NewEngine returns an Engine player. opts.BuildTC, if nil, defaults to
// an unbounded time control capped only by search.DepthLimit.
func NewEngine(opts EngineOptions) *Engine {
	if opts.Name == "" {
		opts.Name = "engine"
	}
	buildTC := opts.BuildTC
	if buildTC == nil {
		buildTC = func(pos *board.Position) *search.TimeControl {
			return search.NewTimeControl(pos)
		}
	}
	return &Engine{
		name:    opts.Name,
		eng:     search.NewEngine(board.New(), opts.Log, opts.Search),
		buildTC: buildTC,
	}
}

func (e *Engine) Name() string { return e.name }

// AcceptsDraw reports whether the last completed search's score was at
// or below the draw value (spec section 4.10).
func (e *Engine) AcceptsDraw() bool {
	return e.eng.FinalAlpha() <= search.DrawValue
}

// GetMove runs the search on pos and returns its chosen move, leaving
// pos bit-identical: every Make the search performs on pos is paired
// with an Unmake before Play returns.
func (e *Engine) GetMove(pos *board.Position) move.Move {
	e.eng.SetPosition(pos)
	pv := e.eng.Play(e.buildTC(pos))
	if len(pv) == 0 {
		return move.Invalid
	}
	return pv[0]
}

func (e *Engine) Stop() { e.eng.Stop() }

func (e *Engine) Reset() { e.eng.Reset() }
