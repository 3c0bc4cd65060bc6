package console

import (
	"bufio"
	"context"
)

// lineReader - pumps lines from a blocking reader into a channel, so a read
// can be abandoned when the session context ends.
type lineReader struct {
	lines chan string
	errs  chan error
}

func newLineReader(in *bufio.Reader) *lineReader {
	that := &lineReader{
		lines: make(chan string),
		errs:  make(chan error, 1),
	}

	go that.pump(in)

	return that
}

func (that *lineReader) pump(in *bufio.Reader) {
	for {
		line, err := in.ReadString('\n')
		if err != nil {
			// A final line without a newline still counts as input.
			if line != "" {
				that.lines <- line
			}
			that.errs <- err
			return
		}

		that.lines <- line
	}
}

// ReadLine - returns the next input line, or the first of: a context error
// when the session ends, or the read error that stopped the pump.
func (that *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-that.errs:
		return "", err
	case line := <-that.lines:
		return line, nil
	}
}
