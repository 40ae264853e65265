package asm

import (
	"bufio"
	"io"
	"strings"
)

// line is one source line stripped of its trailing comment, with its
// 1-based line number.
type line struct {
	text string
	num  int
}

// startLexing reads r and streams non-blank, comment-stripped lines on the
// returned channel, in the style of the teacher's asm.StartAssembler
// pipeline. The channel is closed when the input is exhausted.
func startLexing(r io.Reader) <-chan line {
	out := make(chan line)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		lineno := 0
		for scanner.Scan() {
			lineno++
			text := scanner.Text()
			if idx := strings.IndexByte(text, ';'); idx >= 0 {
				text = text[:idx]
			}
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			out <- line{text: text, num: lineno}
		}
	}()
	return out
}
