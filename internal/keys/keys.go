// Package keys watches the terminal for the quit key.
package keys

import (
	"context"
	"io"
	"os"

	"github.com/apex/log"
	"golang.org/x/term"
)

// QuitKey ends the interactive scoreboard
const QuitKey = 'q'

// WatchQuit switches f into raw mode and signals on the returned channel
// when the quit key is read. The restore function puts the terminal back and
// must be called before exiting. When f is not a terminal the channel never
// fires and restore does nothing.
func WatchQuit(ctx context.Context, f *os.File) (<-chan struct{}, func()) {
	quit := make(chan struct{})

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return quit, func() {}
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		log.WithError(err).Warn("could not enable raw mode, quit key disabled")
		return quit, func() {}
	}

	go func() {
		if WaitForKey(ctx, f, QuitKey) {
			close(quit)
		}
	}()

	restore := func() {
		if err := term.Restore(fd, state); err != nil {
			log.WithError(err).Warn("restoring terminal")
		}
	}
	return quit, restore
}

// WaitForKey reads r one byte at a time until key is read (true) or the
// reader ends or ctx is done (false). Ctrl-C is treated as the key since raw
// mode stops the terminal from raising SIGINT.
func WaitForKey(ctx context.Context, r io.Reader, key byte) bool {
	buf := make([]byte, 1)
	for ctx.Err() == nil {
		n, err := r.Read(buf)
		if n == 1 && (buf[0] == key || buf[0] == ctrlC) {
			return ctx.Err() == nil
		}
		if err != nil {
			return false
		}
	}
	return false
}

const ctrlC = 0x03
