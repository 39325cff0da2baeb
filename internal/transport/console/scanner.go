package console

import (
	"bufio"
	"bytes"
	"unicode"
)

// maxTokenLength caps how much of a single word is kept. Longer words are
// cut to this length and the rest is discarded up to the next space.
const maxTokenLength = 64

type wordSplitter struct {
	discarding bool
}

// split - works like bufio.ScanWords but never asks the scanner for an
// unbounded buffer, so an oversized word becomes one rejectable token.
func (that *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	skipped := 0

	if that.discarding {
		end := bytes.IndexFunc(data, unicode.IsSpace)
		if end < 0 {
			return len(data), nil, nil
		}

		that.discarding = false
		skipped = end
		data = data[end:]
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil || token != nil || advance > 0 {
		return skipped + advance, token, err
	}

	if len(data) >= maxTokenLength {
		that.discarding = true

		return skipped + len(data), data[:maxTokenLength], nil
	}

	return skipped, nil, nil
}
