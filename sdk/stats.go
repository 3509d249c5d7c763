package sdk

import (
	"encoding/json"
	"strconv"
	"sync"
)

// Stats is a concurrency safe map of call counters
type Stats interface {
	json.Marshaler
	Set(key string, val interface{})
	Increment(key string, n int64)
	Get(key string) (interface{}, bool)
	String() (string, error)
}

type stats struct {
	kv map[string]interface{}
	mu sync.Mutex
}

// NewStats will return a properly initialized Stats
func NewStats() Stats {
	return &stats{
		kv: make(map[string]interface{}),
	}
}

// Set writes to the map
func (s *stats) Set(key string, val interface{}) {
	s.mu.Lock()
	s.kv[key] = val
	s.mu.Unlock()
}

// Increment adds n to the counter at key
func (s *stats) Increment(key string, n int64) {
	s.mu.Lock()
	var nval int64
	switch v := s.kv[key].(type) {
	case int:
		nval = int64(v) + n
	case int32:
		nval = int64(v) + n
	case int64:
		nval = v + n
	default:
		// a missing or non numeric value is replaced
		nval = n
	}
	s.kv[key] = nval
	s.mu.Unlock()
}

// Get reads from the map
func (s *stats) Get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.kv[key]
	return val, ok
}

// MarshalJSON returns the underlying map
func (s *stats) MarshalJSON() (buf []byte, err error) {
	s.mu.Lock()
	buf, err = json.Marshal(s.kv)
	s.mu.Unlock()
	return
}

func (s *stats) String() (string, error) {
	buf, err := s.MarshalJSON()
	return string(buf), err
}

// PrefixStats will return a stats that writes to s with keys prefixed with prefix
func PrefixStats(s Stats, prefix string) Stats {
	return &prefixedStats{
		s:      s,
		prefix: prefix,
	}
}

type prefixedStats struct {
	s      Stats
	prefix string
}

func (p *prefixedStats) withPrefix(key string) string {
	return p.prefix + "." + key
}

func (p *prefixedStats) Set(key string, val interface{}) {
	p.s.Set(p.withPrefix(key), val)
}

func (p *prefixedStats) Increment(key string, n int64) {
	p.s.Increment(p.withPrefix(key), n)
}

func (p *prefixedStats) Get(key string) (interface{}, bool) {
	return p.s.Get(p.withPrefix(key))
}

func (p *prefixedStats) MarshalJSON() ([]byte, error) {
	return p.s.MarshalJSON()
}

func (p *prefixedStats) String() (string, error) {
	return p.s.String()
}

// RecordResult counts a finished call against s
func RecordResult(s Stats, r Result) {
	if s == nil {
		return
	}
	s.Increment("requests", 1)
	if r.Success {
		s.Increment("success", 1)
		return
	}
	s.Increment("failure", 1)
	if r.Status != nil {
		s.Increment("status."+strconv.Itoa(*r.Status), 1)
	}
}
