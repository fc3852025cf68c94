package poller

import (
	"fmt"
	"sync"

	"github.com/CobSammich/nba-scores-cli/pkg/contracts"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// blockResult is the outcome of interpreting one block
type blockResult struct {
	game *models.Game
	err  error
}

// InterpretBlocks interprets every block concurrently, one goroutine per
// block, and returns the games in page order. A block that fails becomes a
// BlockFailure and the remaining blocks are still interpreted.
func InterpretBlocks(
	module contracts.SportModule,
	blocks []models.RawBlock,
	tz models.Timezone,
) ([]models.Game, []models.BlockFailure) {
	results := make([]blockResult, len(blocks))

	var wg sync.WaitGroup
	for i := range blocks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = interpretBlock(module, blocks[i], tz)
		}(i)
	}
	wg.Wait()

	games := make([]models.Game, 0, len(blocks))
	var failures []models.BlockFailure

	for i, r := range results {
		if r.err != nil {
			failures = append(failures, models.NewBlockFailure(i, r.err))
			continue
		}
		games = append(games, *r.game)
	}

	return games, failures
}

func interpretBlock(module contracts.SportModule, block models.RawBlock, tz models.Timezone) (res blockResult) {
	defer func() {
		if r := recover(); r != nil {
			res = blockResult{err: fmt.Errorf("interpret panicked: %v", r)}
		}
	}()

	game, err := module.Interpret(block, tz)
	if err != nil {
		return blockResult{err: err}
	}

	if err := module.ValidateGame(game); err != nil {
		return blockResult{err: fmt.Errorf("invalid game %s: %w", game.Matchup(), err)}
	}

	return blockResult{game: game}
}
