package tetris

// ScoreStore persists the best score under a numeric id.
// Implementations may fail; the engine then plays on with high score 0.
type ScoreStore interface {
	LoadHighScore(id uint32) (int64, error)
	SaveHighScore(id uint32, value int64) error
}

// HighScore returns the stored best score, or 0 when the store is missing or failing.
func (e *Engine) HighScore() int {
	if e.store == nil {
		return 0
	}
	best, err := e.store.LoadHighScore(e.cfg.Store.ScoreID)
	if err != nil {
		return 0
	}
	return int(best)
}

// flushHighScore writes the current score if it beats the stored one.
func (e *Engine) flushHighScore() {
	if e.store == nil {
		return
	}

	stored, err := e.store.LoadHighScore(e.cfg.Store.ScoreID)
	if err != nil {
		e.logger.Warn("could not load high score", "id", e.cfg.Store.ScoreID, "error", err)
		return
	}
	if int64(e.score) <= stored {
		return
	}

	if err := e.store.SaveHighScore(e.cfg.Store.ScoreID, int64(e.score)); err != nil {
		e.logger.Warn("could not save high score", "id", e.cfg.Store.ScoreID, "score", e.score, "error", err)
		return
	}
	e.logger.Debug("high score saved", "score", e.score, "previous", stored)
}
