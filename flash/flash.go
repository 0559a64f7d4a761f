// Package flash holds the transient notification shown after an action.
package flash

import "sync"

type Kind int

const (
	None Kind = iota
	Success
	Error
)

type Message struct {
	Kind Kind
	Text string
}

func (m Message) Empty() bool {
	return m.Kind == None || m.Text == ""
}

// Board keeps the latest flash. A new message replaces the previous one.
type Board struct {
	mu      sync.Mutex
	current Message
	seq     uint64
}

func (b *Board) Success(text string) {
	b.set(Message{Kind: Success, Text: text})
}

func (b *Board) Error(text string) {
	b.set(Message{Kind: Error, Text: text})
}

func (b *Board) set(msg Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = msg
	b.seq++
}

// Current returns the message and a sequence number that changes on every post.
func (b *Board) Current() (Message, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.seq
}

// Dismiss clears the message if it is still the one identified by seq.
func (b *Board) Dismiss(seq uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq == b.seq {
		b.current = Message{}
	}
}

func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = Message{}
	b.seq++
}
