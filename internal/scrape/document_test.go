package scrape_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/CobSammich/nba-scores-cli/internal/scrape"
	"github.com/CobSammich/nba-scores-cli/internal/testutil"
)

func TestParseBlocks_SamplePage(t *testing.T) {
	blocks, err := scrape.ParseBlocks(strings.NewReader(testutil.SamplePage()))
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}

	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(blocks))
	}

	scheduled := blocks[0]
	if !reflect.DeepEqual(scheduled.TeamNames, []string{"LA Lakers", "Boston"}) {
		t.Errorf("TeamNames = %q", scheduled.TeamNames)
	}
	if len(scheduled.ScoreCells) != 10 {
		t.Errorf("len(ScoreCells) = %d, want 10", len(scheduled.ScoreCells))
	}
	for i, cell := range scheduled.ScoreCells {
		if cell != "" {
			t.Errorf("ScoreCells[%d] = %q, want empty", i, cell)
		}
	}
	if !reflect.DeepEqual(scheduled.TimezoneCells, testutil.Timezones) {
		t.Errorf("TimezoneCells = %q, want %q", scheduled.TimezoneCells, testutil.Timezones)
	}
	if len(scheduled.LeaderCells) != 0 {
		t.Errorf("LeaderCells = %q, want none", scheduled.LeaderCells)
	}

	started := blocks[1]
	if !reflect.DeepEqual(started.TeamNames, []string{"Golden State", "Phoenix"}) {
		t.Errorf("TeamNames = %q", started.TeamNames)
	}
	if !reflect.DeepEqual(started.ScoreCells, testutil.OvertimeScores) {
		t.Errorf("ScoreCells = %q, want %q", started.ScoreCells, testutil.OvertimeScores)
	}
	if !reflect.DeepEqual(started.LeaderCells, testutil.Leaders) {
		t.Errorf("LeaderCells = %q, want %q", started.LeaderCells, testutil.Leaders)
	}
	if started.AltStatusText != "Final/OT" {
		t.Errorf("AltStatusText = %q, want Final/OT", started.AltStatusText)
	}
	if len(started.TimezoneCells) != 0 {
		t.Errorf("TimezoneCells = %q, want none", started.TimezoneCells)
	}

	if got := len(blocks[2].ScoreCells); got != 7 {
		t.Errorf("malformed block has %d score cells, want 7", got)
	}
}

func TestParseBlocks_CollapsesWhitespace(t *testing.T) {
	page := testutil.Page([]string{
		testutil.StartedBlock("Oklahoma\n   City", "New  Orleans", "4th\t 2:01",
			testutil.OvertimeScores,
			[]string{"Shai\n Gilgeous-Alexander  35", "a 1", "b 2", "c 3", "d 4", "e 5"}),
	})

	blocks, err := scrape.ParseBlocks(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}

	b := blocks[0]
	if !reflect.DeepEqual(b.TeamNames, []string{"Oklahoma City", "New Orleans"}) {
		t.Errorf("TeamNames = %q", b.TeamNames)
	}
	if b.AltStatusText != "4th 2:01" {
		t.Errorf("AltStatusText = %q", b.AltStatusText)
	}
	if b.LeaderCells[0] != "Shai Gilgeous-Alexander 35" {
		t.Errorf("LeaderCells[0] = %q", b.LeaderCells[0])
	}
}

func TestParseBlocks_EmptyPage(t *testing.T) {
	blocks, err := scrape.ParseBlocks(strings.NewReader("<html><body>No games scheduled</body></html>"))
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("len(blocks) = %d, want 0", len(blocks))
	}
}
