package lexer

import "io"

// entry pairs a Lexer with the closer for the stream backing it, so the
// stack can release the file handle when the lexer is popped.
type entry struct {
	lexer  *Lexer
	closer io.Closer
}

// Stack is a LIFO of active lexers, one per currently open IDL file
// during import descent (spec.md §4.3). Depth 1 means the top lexer is
// reading the main file supplied to Parse.
type Stack struct {
	entries []entry
}

// NewStack returns an empty lexer stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push opens buf as filename, wraps it in a new Lexer, and makes it the
// active (top) lexer. closer may be nil when the buffer doesn't own a
// releasable resource (e.g. an in-memory string).
func (s *Stack) Push(buf *CharBuffer, filename string, closer io.Closer) *Lexer {
	l := New(buf, filename)
	s.entries = append(s.entries, entry{lexer: l, closer: closer})
	return l
}

// Top returns the active lexer, or nil if the stack is empty.
func (s *Stack) Top() *Lexer {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].lexer
}

// Pop destroys the top entry, closing its stream if it has one.
func (s *Stack) Pop() error {
	if len(s.entries) == 0 {
		return nil
	}
	last := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	if last.closer != nil {
		return last.closer.Close()
	}
	return nil
}

// Depth reports how many lexers are currently active. Depth 1
// identifies parsing in the main file (spec.md §4.3/§4.5.1).
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Close tears down every remaining lexer, closing their streams, in
// LIFO order. The stack owns all remaining lexers and releases them on
// teardown (spec.md §4.3).
func (s *Stack) Close() error {
	var firstErr error
	for len(s.entries) > 0 {
		if err := s.Pop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
