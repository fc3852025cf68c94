package basketball_nba

import "github.com/CobSammich/nba-scores-cli/pkg/models"

// Positional contract of a game block. The page carries no labels for most of
// these regions, so position is the only thing tying a cell to its meaning.
const (
	// Team name links are listed away team first
	awayTeamIndex = 0
	homeTeamIndex = 1

	// Before tip-off the page renders an empty score table of fixed width,
	// independent of how many periods the game will have.
	placeholderScoreCells = 10

	// Score table rows: period labels, away line, home line. Each row is
	// n cells wide and its last cell is the running total.
	scoreRowGroups = 3

	// Points, rebounds, assists for each of the two teams
	leaderCellCount = 6
)

// LeaderCategoryOrder is the order each team's leaders appear in. Leader
// cells alternate away/home, so cell i belongs to category i/2.
var LeaderCategoryOrder = [3]models.LeaderCategory{
	models.CategoryPoints,
	models.CategoryRebounds,
	models.CategoryAssists,
}

// isPlaceholderTable reports whether the score table is the pre-game
// placeholder, i.e. the game has not started.
func isPlaceholderTable(cells []string) bool {
	return len(cells) == placeholderScoreCells
}

// scoreColumns returns the width of one score row, or false when the cell
// count cannot be split into the three rows.
func scoreColumns(cells []string) (int, bool) {
	if len(cells) == 0 || len(cells)%scoreRowGroups != 0 {
		return 0, false
	}
	return len(cells) / scoreRowGroups, true
}

// leaderSide maps a leader cell to the team it belongs to
func leaderSide(i int) int {
	if i%2 == 0 {
		return awayTeamIndex
	}
	return homeTeamIndex
}

// leaderSlot maps a leader cell to its position in LeaderCategoryOrder
func leaderSlot(i int) int {
	return i / 2
}
