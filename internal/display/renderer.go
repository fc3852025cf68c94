// Package display renders scoreboards to a terminal.
package display

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// Column widths of the scoreboard table
const (
	teamWidth   = 16
	scoreWidth  = 5
	statusWidth = 9
	headerScore = 13
)

// ANSI sequences for screen control
const (
	clearScreen = "\x1b[2J\x1b[1;1H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// TeamColorer looks up a team's colour by display name
type TeamColorer interface {
	TeamColor(name string) (models.Color, bool)
}

// Options controls terminal features
type Options struct {
	Color       bool // truecolor team backgrounds and styled header
	ClearScreen bool // redraw from the top-left on every render
	QuitHint    bool // print the quit key under the board
}

// Renderer writes scoreboards as a fixed-width table
type Renderer struct {
	out    io.Writer
	teams  TeamColorer
	opts   Options
	header *color.Color
	failed *color.Color
	mu     sync.Mutex
}

// New creates a renderer writing to out
func New(out io.Writer, teams TeamColorer, opts Options) *Renderer {
	r := &Renderer{
		out:    out,
		teams:  teams,
		opts:   opts,
		header: color.New(color.Bold),
		failed: color.New(color.FgRed),
	}
	if opts.Color {
		r.header.EnableColor()
		r.failed.EnableColor()
	} else {
		r.header.DisableColor()
		r.failed.DisableColor()
	}
	return r
}

// NewTerminal creates a renderer for f, enabling colour and screen control
// only when f is a terminal
func NewTerminal(f *os.File, out io.Writer, teams TeamColorer) *Renderer {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return New(out, teams, Options{Color: tty, ClearScreen: tty, QuitHint: tty})
}

// Deliver implements contracts.ScoreboardSink
func (r *Renderer) Deliver(ctx context.Context, sb *models.Scoreboard) error {
	return r.Render(sb)
}

// Render draws the whole board in a single write
func (r *Renderer) Render(sb *models.Scoreboard) error {
	var b bytes.Buffer

	if r.opts.ClearScreen {
		b.WriteString(clearScreen + hideCursor)
	}

	r.writeHeader(&b)
	for _, game := range sb.Games {
		r.writeGame(&b, game)
	}

	if len(sb.Failures) > 0 {
		b.WriteString("\n")
		for _, f := range sb.Failures {
			b.WriteString(r.failed.Sprintf("block %d: %s", f.Index+1, f.Message))
			b.WriteString("\n")
		}
	}

	if len(sb.Games) == 0 && len(sb.Failures) == 0 {
		b.WriteString("No games scheduled\n")
	}

	if r.opts.QuitHint {
		fmt.Fprintf(&b, "\nUpdated %s. Press q to quit.\n", sb.FetchedAt.Format("3:04:05 PM"))
	}

	out := b.Bytes()
	if r.opts.ClearScreen {
		// The terminal may be in raw mode, which does not return the carriage
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.out.Write(out)
	return err
}

// Restore clears the board and shows the cursor again after
// screen-controlled rendering
func (r *Renderer) Restore() {
	if r.opts.ClearScreen {
		r.mu.Lock()
		defer r.mu.Unlock()
		io.WriteString(r.out, clearScreen+showCursor)
	}
}

func (r *Renderer) writeHeader(b *bytes.Buffer) {
	line := func(away, home, score, status string) string {
		return fmt.Sprintf("%s %s%s\t%s",
			center(away, teamWidth), center(home, teamWidth),
			center(score, headerScore), center(status, statusWidth))
	}

	b.WriteString(r.header.Sprint(line("Away", "Home", "Score", "Status")))
	b.WriteString("\n")
	b.WriteString(line("----", "----", "-----", "------"))
	b.WriteString("\n")
}

func (r *Renderer) writeGame(b *bytes.Buffer, game models.Game) {
	fmt.Fprintf(b, "%s@%s%s - %s\t%s\n",
		r.teamCell(game.AwayTeam.Name),
		r.teamCell(game.HomeTeam.Name),
		center(fmt.Sprint(game.AwayTeam.Score), scoreWidth),
		center(fmt.Sprint(game.HomeTeam.Score), scoreWidth),
		center(game.StatusText, statusWidth))

	if !game.HasStarted {
		return
	}

	for _, category := range []models.LeaderCategory{
		models.CategoryPoints, models.CategoryRebounds, models.CategoryAssists,
	} {
		away := game.AwayTeam.Leader(category)
		home := game.HomeTeam.Leader(category)
		fmt.Fprintf(b, "%*s%-4s%*s | %s\n",
			2, "", category,
			teamWidth*2-4, fmt.Sprintf("%s %d", away.Name, away.Value),
			fmt.Sprintf("%s %d", home.Name, home.Value))
	}
}

// teamCell centres a team name and paints the padded cell in the team colour
func (r *Renderer) teamCell(name string) string {
	cell := center(name, teamWidth)
	if !r.opts.Color || r.teams == nil {
		return cell
	}
	c, ok := r.teams.TeamColor(name)
	if !ok {
		return cell
	}
	bg := color.BgRGB(int(c.R), int(c.G), int(c.B))
	bg.EnableColor()
	return bg.Sprint(cell)
}

// center pads s to width with the extra space on the right. Longer strings
// are returned unchanged.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
