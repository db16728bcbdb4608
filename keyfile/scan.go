package keyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/multiway/btree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// ErrSyntax flags a token which is not a signed decimal integer.
var ErrSyntax = errors.New("keyfile: syntax error")

// Batch is a group of keys read from one or more input lines. A batch with
// Err set is the last one of a stream.
type Batch struct {
	Line int // last input line contributing to the batch
	Keys []btree.Key
	Err  error
}

// Parse reads all keys from r.
func Parse(r io.Reader) ([]btree.Key, error) {
	var keys []btree.Key
	err := scan(r, func(b Batch) bool {
		keys = append(keys, b.Keys...)
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// ParseString reads all keys from s.
func ParseString(s string) ([]btree.Key, error) {
	return Parse(strings.NewReader(s))
}

// scan segments the text of r and calls emit for every batch of keys.
// Scanning stops early if emit returns false.
func scan(r io.Reader, emit func(Batch) bool) error {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	tk := &tokenizer{line: 1}
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		tk.feed(frag)
		if tk.err != nil {
			return tk.err
		}
		if strings.HasSuffix(frag, "\n") && len(tk.keys) > 0 {
			if !emit(tk.batch(tk.line - 1)) {
				return nil
			}
		}
	}
	tk.flush()
	if tk.err != nil {
		return tk.err
	}
	if len(tk.keys) > 0 {
		emit(tk.batch(tk.line))
	}
	return nil
}

// tokenizer collects keys across segment boundaries; a segment may end in
// the middle of a token.
type tokenizer struct {
	line      int
	token     strings.Builder
	inComment bool
	keys      []btree.Key
	err       error
}

func (tk *tokenizer) feed(frag string) {
	for _, r := range frag {
		if tk.err != nil {
			return
		}
		switch {
		case r == '\n':
			tk.flush()
			tk.inComment = false
			tk.line++
		case tk.inComment:
		case r == '#':
			tk.flush()
			tk.inComment = true
		case r == ',' || r == ';' || unicode.IsSpace(r):
			tk.flush()
		default:
			tk.token.WriteRune(r)
		}
	}
}

func (tk *tokenizer) flush() {
	if tk.token.Len() == 0 || tk.err != nil {
		return
	}
	text := tk.token.String()
	tk.token.Reset()
	key, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		tk.err = fmt.Errorf("%w: line %d: %q is not a key", ErrSyntax, tk.line, text)
		return
	}
	tk.keys = append(tk.keys, key)
}

func (tk *tokenizer) batch(line int) Batch {
	b := Batch{Line: line, Keys: tk.keys}
	tk.keys = nil
	return b
}
