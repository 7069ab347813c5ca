package systems

import (
	"encoding/json"

	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/game"
	"github.com/automoto/pugtreats/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const bestRunKey = "best_run"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data directory for the best run record.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pugtreats",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadBestRun returns the stored best run, or the zero run if there is none.
func LoadBestRun() (components.BestRun, error) {
	var best components.BestRun
	if gdataManager == nil {
		return best, nil
	}

	data, err := gdataManager.LoadItem(bestRunKey)
	if err != nil || data == nil {
		return best, err
	}
	if err := json.Unmarshal(data, &best); err != nil {
		return components.BestRun{}, err
	}
	return best, nil
}

// SaveBestRun stores run as the best run.
func SaveBestRun(run components.BestRun) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(bestRunKey, data)
}

// NewRecordBestRun returns a game over hook that compares the finished round
// with the stored best, saves it if it is better and fills the overlay data.
// Storage failures only cost the record.
func NewRecordBestRun(s *game.Session) func(components.SessionData) {
	log := logger.Named("persistence")
	return func(st components.SessionData) {
		run := components.BestRun{Collected: st.Collected, Survived: st.Elapsed}

		best, err := LoadBestRun()
		if err != nil {
			log.Warn("could not load best run", zap.Error(err))
		}

		over := components.GameOver.Get(s.SessionEntry())
		over.Best = best
		if run.Beats(best) {
			over.Best = run
			over.NewBest = true
			if err := SaveBestRun(run); err != nil {
				log.Warn("could not save best run", zap.Error(err))
			}
		}
	}
}
