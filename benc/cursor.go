package benc

// Cursor is a forward-only reader over decoder input. It offers one byte
// of lookahead via Peek; there is no backtracking.
type Cursor struct {
	input string
	pos   int
}

// NewCursor creates a cursor at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Peek returns the current byte without consuming it.
// The second return is false at end of input.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// Next consumes and returns the current byte.
// The second return is false at end of input.
func (c *Cursor) Next() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	ch := c.input[c.pos]
	c.pos++
	return ch, true
}

// Take consumes up to n bytes and returns them. Fewer than n bytes are
// returned when the input runs out first.
func (c *Cursor) Take(n int) string {
	if n <= 0 {
		return ""
	}
	end := c.pos + n
	if end > len(c.input) {
		end = len(c.input)
	}
	s := c.input[c.pos:end]
	c.pos = end
	return s
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.input) - c.pos
}
