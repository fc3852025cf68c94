package basketball_nba

import "github.com/CobSammich/nba-scores-cli/pkg/models"

// Interpret converts the raw text of one game block into a Game.
//
// A block whose score table is the pre-game placeholder yields a scheduled
// game whose status is the start time for tz. Any other block must carry a
// full score table and six leader cells, and its status is the block's
// status line as scraped. Every failure is returned as an *ExtractionError;
// Interpret holds no state and is safe to call concurrently.
func Interpret(block models.RawBlock, tz models.Timezone) (*models.Game, error) {
	away, home, err := teamNames(block.TeamNames)
	if err != nil {
		return nil, err
	}

	if isPlaceholderTable(block.ScoreCells) {
		startTime, err := scheduledTime(block.TimezoneCells, tz)
		if err != nil {
			return nil, err
		}
		return newScheduledGame(away, home, startTime), nil
	}

	n, ok := scoreColumns(block.ScoreCells)
	if !ok {
		return nil, malformedCount(len(block.ScoreCells))
	}

	awayScore, err := parseScoreCell(block.ScoreCells, 2*n-1)
	if err != nil {
		return nil, err
	}
	homeScore, err := parseScoreCell(block.ScoreCells, 3*n-1)
	if err != nil {
		return nil, err
	}

	leaders, err := parseLeaders(block.LeaderCells)
	if err != nil {
		return nil, err
	}

	return newStartedGame(
		newTeam(away, awayScore, leaders[awayTeamIndex]),
		newTeam(home, homeScore, leaders[homeTeamIndex]),
		// Once a game starts the page moves its status out of the time zone list
		block.AltStatusText,
		parsePeriodScores(block.ScoreCells, n),
	), nil
}

// teamNames returns the away and home team names as scraped
func teamNames(names []string) (string, string, error) {
	if len(names) < 2 {
		return "", "", missingField(fieldTeamNames, len(names))
	}
	return names[awayTeamIndex], names[homeTeamIndex], nil
}

// scheduledTime picks the start time shown for the configured zone
func scheduledTime(cells []string, tz models.Timezone) (string, error) {
	slot := tz.Slot()
	if !tz.Valid() || slot >= len(cells) {
		return "", missingField(fieldTimezoneCells, slot)
	}
	return cells[slot], nil
}
