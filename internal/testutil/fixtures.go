// Package testutil builds scoreboard page fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strings"
)

// Leaders is a well-formed set of six leader cells (away/home alternating)
var Leaders = []string{
	"LeBron James 31",
	"Jayson Tatum 28",
	"Anthony Davis 14",
	"Al Horford 9",
	"D'Angelo Russell 8",
	"Jrue Holiday 7",
}

// Timezones is a well-formed set of start times, Pacific through Eastern
var Timezones = []string{"4:00p", "5:00p", "6:00p", "7:00p"}

// OvertimeScores is the score table of a game decided in one overtime:
// 102-99 after four quarters and an OT.
var OvertimeScores = []string{
	"1", "2", "3", "4", "OT", "Tot",
	"25", "22", "20", "24", "11", "102",
	"24", "21", "23", "23", "8", "99",
}

// ScheduledBlock renders a game block for a game that has not started
func ScheduledBlock(away, home string, times []string) string {
	var b strings.Builder
	b.WriteString(`<div class="shsScoreboardCol"><table>`)
	b.WriteString(`<tr><td class="shsTeamCol"><span class="shsNamD"><a href="#">` + away + `</a></span></td>`)
	for i := 0; i < 5; i++ {
		b.WriteString(`<td class="shsTotD">&nbsp;</td>`)
	}
	b.WriteString(`</tr><tr><td class="shsTeamCol"><span class="shsNamD"><a href="#">` + home + `</a></span></td>`)
	for i := 0; i < 5; i++ {
		b.WriteString(`<td class="shsTotD">&nbsp;</td>`)
	}
	b.WriteString(`</tr></table><div class="shsTimes">`)
	for _, t := range times {
		b.WriteString(`<span class="shsTimezone">` + t + `</span>`)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// StartedBlock renders a game block for a game in progress or finished
func StartedBlock(away, home, status string, scores, leaders []string) string {
	var b strings.Builder
	b.WriteString(`<div class="shsScoreboardCol">`)
	b.WriteString(`<div class="shsTeamCol"> ` + status + ` </div><table>`)
	n := (len(scores) + 2) / 3
	for row := 0; row < 3; row++ {
		b.WriteString("<tr>")
		switch row {
		case 1:
			b.WriteString(`<td><span class="shsNamD"><a href="#">` + away + `</a></span></td>`)
		case 2:
			b.WriteString(`<td><span class="shsNamD"><a href="#">` + home + `</a></span></td>`)
		default:
			b.WriteString("<td></td>")
		}
		for col := 0; col < n && row*n+col < len(scores); col++ {
			fmt.Fprintf(&b, `<td class="shsTotD">%s</td>`, scores[row*n+col])
		}
		b.WriteString("</tr>")
	}
	b.WriteString(`</table><ul>`)
	for _, l := range leaders {
		b.WriteString(`<li class="shsLeader">` + l + `</li>`)
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

// Page wraps rows of blocks into a scoreboard page
func Page(rows ...[]string) string {
	var b strings.Builder
	b.WriteString("<html><body><div id=\"shsScoreboard\">")
	for _, row := range rows {
		b.WriteString(`<div class="shsScoreboardRow">`)
		for _, block := range row {
			b.WriteString(block)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString("</div></body></html>")
	return b.String()
}

// SamplePage is a page with a scheduled game, an overtime final and a
// block whose score table is malformed.
func SamplePage() string {
	return Page(
		[]string{
			ScheduledBlock("LA Lakers", "Boston", Timezones),
			StartedBlock("Golden State", "Phoenix", "Final/OT", OvertimeScores, Leaders),
		},
		[]string{
			StartedBlock("Miami", "Orlando", "3rd 4:12", []string{"1", "2", "3", "4", "Tot", "30", "28"}, Leaders),
		},
	)
}
