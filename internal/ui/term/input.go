package term

import (
	"time"
	"unicode/utf8"

	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/text"
)

// escTimeout separates a lone escape press from the start of a sequence.
const escTimeout = 50 * time.Millisecond

// readLoop pumps terminal bytes through the sequence parser into the key
// channel until the input stream closes or the backend stops.
func (b *Backend) readLoop() {
	defer close(b.keyCh)

	raw := make(chan byte, 256)
	go func() {
		defer close(raw)
		buf := make([]byte, 256)
		for {
			n, err := b.in.Read(buf)
			for i := 0; i < n; i++ {
				select {
				case raw <- buf[i]:
				case <-b.done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	p := &parser{raw: raw, done: b.done}
	for {
		key, ok := p.next()
		if !ok {
			return
		}
		select {
		case b.keyCh <- key:
		case <-b.done:
			return
		}
	}
}

type parser struct {
	raw  <-chan byte
	done <-chan struct{}
}

// next blocks for the next complete key event.
func (p *parser) next() (keys.Key, bool) {
	c, ok := p.read()
	if !ok {
		return keys.Key{}, false
	}
	return p.decode(c)
}

func (p *parser) decode(c byte) (keys.Key, bool) {
	switch {
	case c == 0x1b:
		return p.decodeEscape()
	case c == '\r':
		return keys.Key{Code: keys.Return}, true
	case c == 0x7f:
		return keys.Key{Code: keys.Backspace}, true
	case c == '\t':
		return keys.Plain('\t'), true
	case c < 0x20:
		// Control chord: ^A..^Z map back to their letter.
		return keys.Ctrl(text.Codepoint(c-1) + 'a'), true
	default:
		return p.decodeRune(c)
	}
}

func (p *parser) decodeEscape() (keys.Key, bool) {
	c, ok := p.readTimeout(escTimeout)
	if !ok {
		return keys.Key{Code: keys.Escape}, true
	}
	switch c {
	case '[':
		return p.decodeCSI()
	case 'O':
		final, ok := p.read()
		if !ok {
			return keys.Key{}, false
		}
		return namedFinal(final, 0), true
	default:
		key, ok := p.decode(c)
		if !ok {
			return keys.Key{}, false
		}
		key.Mod |= keys.ModAlt
		return key, true
	}
}

// decodeCSI reads one control sequence: optional numeric parameter then a
// final byte. Focus reporting arrives here as I and O.
func (p *parser) decodeCSI() (keys.Key, bool) {
	param := 0
	for {
		c, ok := p.read()
		if !ok {
			return keys.Key{}, false
		}
		if c >= '0' && c <= '9' {
			param = param*10 + int(c-'0')
			continue
		}
		if c == ';' {
			// Modifier parameters are not distinguished yet; swallow them.
			param = 0
			continue
		}
		return namedFinal(c, param), true
	}
}

func namedFinal(final byte, param int) keys.Key {
	switch final {
	case 'A':
		return keys.Key{Code: keys.Up}
	case 'B':
		return keys.Key{Code: keys.Down}
	case 'C':
		return keys.Key{Code: keys.Right}
	case 'D':
		return keys.Key{Code: keys.Left}
	case 'H':
		return keys.Key{Code: keys.Home}
	case 'F':
		return keys.Key{Code: keys.End}
	case 'I':
		return keys.Key{Code: keys.FocusIn}
	case 'O':
		return keys.Key{Code: keys.FocusOut}
	case '~':
		switch param {
		case 1, 7:
			return keys.Key{Code: keys.Home}
		case 3:
			return keys.Key{Code: keys.Delete}
		case 4, 8:
			return keys.Key{Code: keys.End}
		case 5:
			return keys.Key{Code: keys.PageUp}
		case 6:
			return keys.Key{Code: keys.PageDown}
		}
	}
	return keys.Key{Code: keys.Invalid}
}

func (p *parser) decodeRune(first byte) (keys.Key, bool) {
	length := 1
	switch {
	case first >= 0xf0:
		length = 4
	case first >= 0xe0:
		length = 3
	case first >= 0xc0:
		length = 2
	}
	buf := make([]byte, 1, length)
	buf[0] = first
	for len(buf) < length {
		c, ok := p.read()
		if !ok {
			return keys.Key{}, false
		}
		buf = append(buf, c)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return keys.Key{Code: keys.Invalid}, true
	}
	return keys.Plain(text.Codepoint(r)), true
}

func (p *parser) read() (byte, bool) {
	select {
	case c, ok := <-p.raw:
		return c, ok
	case <-p.done:
		return 0, false
	}
}

func (p *parser) readTimeout(d time.Duration) (byte, bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case c, ok := <-p.raw:
		return c, ok
	case <-timer.C:
		return 0, false
	case <-p.done:
		return 0, false
	}
}
