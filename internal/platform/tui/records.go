package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// loggedRecords reports persistence failures and passes them on. Games
// treat records as best effort, so a failing database never ends a run.
type loggedRecords struct {
	rec    *storage.Records
	gameID string
	logger *log.Logger
}

// NewRecords returns the records view of store for gameID, or nil
// without a store.
func NewRecords(store *storage.Store, gameID string, logger *log.Logger) registry.Records {
	if store == nil {
		return nil
	}
	if logger == nil {
		logger = log.Default()
	}
	return &loggedRecords{rec: store.RecordsFor(gameID), gameID: gameID, logger: logger}
}

func (r *loggedRecords) BestScore() (int, error) {
	best, err := r.rec.BestScore()
	if err != nil {
		r.logger.Warn("could not load best score", "game", r.gameID, "error", err)
	}
	return best, err
}

func (r *loggedRecords) SetBestScore(score int) error {
	err := r.rec.SetBestScore(score)
	if err != nil {
		r.logger.Warn("could not save best score", "game", r.gameID, "score", score, "error", err)
	}
	return err
}

func (r *loggedRecords) AddCoins(n int) error {
	err := r.rec.AddCoins(n)
	if err != nil {
		r.logger.Warn("could not add coins", "game", r.gameID, "coins", n, "error", err)
	}
	return err
}
