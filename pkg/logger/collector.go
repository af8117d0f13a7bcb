package logger

import (
	"sync"
	"time"
)

// Entry is a collected warn/error log line.
type Entry struct {
	Level    string                 `json:"level"`
	Message  string                 `json:"message"`
	Fields   map[string]interface{} `json:"fields,omitempty"`
	Caller   string                 `json:"caller"`
	Count    int                    `json:"count"`
	LastSeen time.Time              `json:"last_seen"`
}

// Collector keeps the most recent warn/error entries in a bounded ring so
// operational endpoints can report on them without scraping log output.
// Identical consecutive messages from the same caller are coalesced.
type Collector struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	next     int
	total    uint64
}

func NewCollector(capacity int) *Collector {
	if capacity <= 0 {
		capacity = 64
	}
	return &Collector{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

func (c *Collector) Add(level, message string, fields map[string]interface{}, caller string) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++

	if n := len(c.entries); n > 0 {
		last := &c.entries[(c.next+n-1)%n]
		if last.Level == level && last.Message == message && last.Caller == caller {
			last.Count++
			last.LastSeen = now
			return
		}
	}

	e := Entry{
		Level:    level,
		Message:  message,
		Fields:   fields,
		Caller:   caller,
		Count:    1,
		LastSeen: now,
	}

	if len(c.entries) < c.capacity {
		c.entries = append(c.entries, e)
		return
	}
	c.entries[c.next] = e
	c.next = (c.next + 1) % c.capacity
}

// Snapshot returns collected entries oldest-first and the total count seen.
func (c *Collector) Snapshot() ([]Entry, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, 0, len(c.entries))
	n := len(c.entries)
	for i := 0; i < n; i++ {
		out = append(out, c.entries[(c.next+i)%n])
	}
	return out, c.total
}
