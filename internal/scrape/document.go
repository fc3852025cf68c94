// Package scrape pulls the raw text of each game block out of a scoreboard
// page. It knows where things are in the markup; what they mean is left to
// the sport module.
package scrape

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// Selectors for the regions of the scoreboard page
const (
	SelectorRow       = ".shsScoreboardRow"
	SelectorBlock     = ".shsScoreboardCol"
	SelectorTeamName  = ".shsNamD a"
	SelectorScoreCell = ".shsTotD"
	SelectorLeader    = ".shsLeader"
	SelectorTimezone  = ".shsTimezone"
	SelectorStatus    = ".shsTeamCol"
)

// ParseBlocks reads a scoreboard page and returns its game blocks in page order
func ParseBlocks(r io.Reader) ([]models.RawBlock, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing scoreboard page: %w", err)
	}
	return BlocksFromDocument(doc), nil
}

// BlocksFromDocument extracts every game block. Rows hold two blocks each.
func BlocksFromDocument(doc *goquery.Document) []models.RawBlock {
	var blocks []models.RawBlock

	doc.Find(SelectorRow).Each(func(_ int, row *goquery.Selection) {
		row.Find(SelectorBlock).Each(func(_ int, block *goquery.Selection) {
			blocks = append(blocks, ExtractBlock(block))
		})
	})

	return blocks
}

// ExtractBlock collects the text regions of one game block
func ExtractBlock(block *goquery.Selection) models.RawBlock {
	return models.RawBlock{
		TeamNames:     texts(block.Find(SelectorTeamName)),
		ScoreCells:    texts(block.Find(SelectorScoreCell)),
		LeaderCells:   texts(block.Find(SelectorLeader)),
		TimezoneCells: texts(block.Find(SelectorTimezone)),
		AltStatusText: cleanText(block.Find(SelectorStatus).First().Text()),
	}
}

// texts returns the cleaned text of every node in the selection
func texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, cleanText(s.Text()))
	})
	return out
}

// cleanText collapses runs of whitespace (including &nbsp;) to single spaces
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
