package forthwith

import "sync"

// Dictionary maps word names to the token bodies captured when their
// definitions were parsed. Store always succeeds, last write wins; Search is
// exact-match only. Like the Stack, every call is linearized, so a handle may
// be shared beyond the evaluation goroutine.
type Dictionary struct {
	mu    sync.RWMutex
	words map[string][]Token
}

func NewDictionary() *Dictionary {
	return &Dictionary{words: make(map[string][]Token)}
}

func (d *Dictionary) Store(name string, body []Token) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.words[name] = body
}

func (d *Dictionary) Search(name string) ([]Token, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	body, defined := d.words[name]
	return body, defined
}

// Len reports how many words are defined.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
