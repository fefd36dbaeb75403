package storage

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
)

// End reasons stored for matches.
const (
	EndInterrupted = "interrupted"
	EndInputClosed = "input closed"
)

// Recorder is a match listener that writes the match and every accepted shot
// to the store. Storage failures are logged and never stop the match.
type Recorder struct {
	store    *Store
	frontend string
	logger   *log.Logger
	matchID  string
	seq      int
}

// NewRecorder creates a Recorder tagging matches with the frontend ID.
func NewRecorder(store *Store, frontend string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, frontend: frontend, logger: logger}
}

// OnEvent implements seabattle.Listener.
func (r *Recorder) OnEvent(ev seabattle.Event) {
	var err error
	switch e := ev.(type) {
	case seabattle.MatchStartedEvent:
		r.matchID, r.seq = e.MatchID, 0
		err = r.store.CreateMatch(e.MatchID, e.Seed, r.frontend)
	case seabattle.ShotFiredEvent:
		if r.matchID == "" {
			return
		}
		r.seq++
		err = r.store.RecordShot(ShotRecord{
			MatchID: r.matchID,
			Seq:     r.seq,
			Side:    e.Side.String(),
			X:       e.Result.Coord.X,
			Y:       e.Result.Coord.Y,
			Hit:     e.Result.Hit,
			Sunk:    e.Result.Sunk,
		})
	case seabattle.MatchEndedEvent:
		err = r.store.FinishMatch(e.MatchID, e.Rounds, EndReason(e.Err))
	default:
		return
	}
	if err != nil {
		r.logger.Warn("match history not recorded", "match", r.matchID, "err", err)
	}
}

// EndReason maps the error that stopped a match to a stored reason.
func EndReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return EndInterrupted
	case errors.Is(err, io.EOF):
		return EndInputClosed
	default:
		return err.Error()
	}
}
