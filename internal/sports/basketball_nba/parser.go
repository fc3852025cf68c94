package basketball_nba

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// regulationPeriods is the number of quarters before overtime
const regulationPeriods = 4

// parseUint parses a non-negative integer cell, ignoring surrounding whitespace
func parseUint(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// parseScoreCell parses the running total at cells[i]
func parseScoreCell(cells []string, i int) (uint32, error) {
	if i < 0 || i >= len(cells) {
		return 0, missingField(fieldScoreCells, i)
	}
	v, err := parseUint(cells[i])
	if err != nil {
		return 0, numericParse(fieldScoreCells, i, cells[i], err)
	}
	return v, nil
}

// parseLeaderText splits "First Last 31" into the player name and the stat
// value. The last whitespace-separated token is the value and everything
// before it is the name.
func parseLeaderText(i int, text string) (models.Leader, error) {
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return models.Leader{}, malformedLeaderText(i, text)
	}

	last := tokens[len(tokens)-1]
	value, err := parseUint(last)
	if err != nil {
		return models.Leader{}, numericParse(fieldLeaderCells, i, last, err)
	}

	return models.Leader{
		Name:  strings.Join(tokens[:len(tokens)-1], " "),
		Value: value,
	}, nil
}

// parseLeaders distributes the six leader cells over the two teams
func parseLeaders(cells []string) ([2][3]models.Leader, error) {
	var leaders [2][3]models.Leader

	if len(cells) < leaderCellCount {
		return leaders, missingField(fieldLeaderCells, len(cells))
	}

	for i := 0; i < leaderCellCount; i++ {
		leader, err := parseLeaderText(i, cells[i])
		if err != nil {
			return leaders, err
		}
		leaders[leaderSide(i)][leaderSlot(i)] = leader
	}

	return leaders, nil
}

// parsePeriodScores reads the per-period columns of a started game's score
// table. Columns whose cells are not numbers yet (periods not played) are
// skipped rather than treated as errors.
func parsePeriodScores(cells []string, n int) []models.PeriodScore {
	var periods []models.PeriodScore

	// The last column of each row is the total, not a period
	for i := 0; i < n-1; i++ {
		away, err := parseUint(cells[n+i])
		if err != nil {
			continue
		}
		home, err := parseUint(cells[2*n+i])
		if err != nil {
			continue
		}

		label := strings.TrimSpace(cells[i])
		if label == "" {
			label = getPeriodLabel(i + 1)
		}

		periods = append(periods, models.PeriodScore{
			Period:    i + 1,
			Label:     label,
			AwayScore: away,
			HomeScore: home,
		})
	}

	return periods
}

// getPeriodLabel returns NBA-specific period label
func getPeriodLabel(period int) string {
	switch {
	case period >= 1 && period <= regulationPeriods:
		return fmt.Sprintf("Q%d", period)
	case period > regulationPeriods:
		return fmt.Sprintf("OT%d", period-regulationPeriods)
	default:
		return fmt.Sprintf("Q%d", period)
	}
}
