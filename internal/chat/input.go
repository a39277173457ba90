package chat

// InputBuffer accumulates the reply being typed, one rune at a time.
// The zero value is an empty buffer ready for use.
type InputBuffer struct {
	runes []rune
}

// Append adds r to the end of the buffer.
func (b *InputBuffer) Append(r rune) {
	b.runes = append(b.runes, r)
}

// DeleteLast removes the last rune. It is a no-op on an empty buffer.
func (b *InputBuffer) DeleteLast() {
	if len(b.runes) == 0 {
		return
	}
	b.runes = b.runes[:len(b.runes)-1]
}

// Clear empties the buffer.
func (b *InputBuffer) Clear() {
	b.runes = b.runes[:0]
}

// Text returns the buffer contents as a string.
func (b *InputBuffer) Text() string {
	return string(b.runes)
}

// Len returns the number of runes in the buffer.
func (b *InputBuffer) Len() int {
	return len(b.runes)
}
