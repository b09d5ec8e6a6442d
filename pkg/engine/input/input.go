package input

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads newline-terminated input lines.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r for line-by-line reads.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. A final line with
// no trailing newline is returned with a nil error; io.EOF is only returned
// once nothing is left to read.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
