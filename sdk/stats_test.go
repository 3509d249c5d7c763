package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	assert := assert.New(t)
	s := NewStats()
	s.Set("requests", 15)
	val, err := s.String()
	assert.NoError(err)
	assert.Equal("{\"requests\":15}", val)
}

func TestStatsIncrement(t *testing.T) {
	assert := assert.New(t)
	s := NewStats()
	s.Set("requests", 15)
	s.Increment("requests", 5)
	s.Increment("new", 1)
	val, err := s.String()
	assert.NoError(err)
	assert.Equal("{\"new\":1,\"requests\":20}", val)
	v, ok := s.Get("requests")
	assert.True(ok)
	assert.Equal(int64(20), v)
}

func TestStatsConcurrency(t *testing.T) {
	assert := assert.New(t)
	f := func() {
		s := NewStats()
		go func() {
			for i := 0; i < 30; i++ {
				s.MarshalJSON()
			}
		}()
		go func() {
			for i := 0; i < 30; i++ {
				s.Increment("requests", 1)
			}
		}()
	}
	assert.NotPanics(f)
}

func TestStatsWithPrefix(t *testing.T) {
	assert := assert.New(t)

	s := NewStats()
	articles := PrefixStats(s, "articles")
	contacts := PrefixStats(s, "contacts")

	s.Set("a", 15)
	articles.Set("b", 15)
	contacts.Set("c", 15)

	expected := "{\"a\":15,\"articles.b\":15,\"contacts.c\":15}"

	val, err := s.String()
	assert.NoError(err)
	assert.Equal(expected, val)
	val, err = articles.String()
	assert.NoError(err)
	assert.Equal(expected, val)
	v, ok := contacts.Get("c")
	assert.True(ok)
	assert.Equal(15, v)
}

func TestRecordResult(t *testing.T) {
	assert := assert.New(t)
	s := NewStats()
	invoices := PrefixStats(s, "invoices")
	RecordResult(invoices, Envelope(func() (interface{}, error) { return nil, nil }))
	RecordResult(invoices, Envelope(func() (interface{}, error) { return nil, &HTTPError{StatusCode: 404} }))
	RecordResult(invoices, Failure("nope"))
	RecordResult(nil, Failure("ignored"))
	val, err := s.String()
	assert.NoError(err)
	assert.Equal("{\"invoices.failure\":2,\"invoices.requests\":3,\"invoices.status.404\":1,\"invoices.success\":1}", val)
}
