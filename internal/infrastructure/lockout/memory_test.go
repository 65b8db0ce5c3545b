package lockout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_LocksAfterMaxFailures(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(3, time.Minute)

	for i := 0; i < 2; i++ {
		s.RecordFailure("demo@seguros.test")
		locked, _ := s.IsLocked("demo@seguros.test")
		assert.False(t, locked)
	}
	s.RecordFailure("demo@seguros.test")
	locked, retry := s.IsLocked("demo@seguros.test")
	assert.True(t, locked)
	assert.Greater(t, retry, 0)
}

func TestMemoryStore_KeyIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(2, time.Minute)
	s.RecordFailure("Demo@Seguros.Test")
	s.RecordFailure("demo@seguros.test")
	locked, _ := s.IsLocked("DEMO@SEGUROS.TEST")
	assert.True(t, locked)
}

func TestMemoryStore_SuccessClearsFailures(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(2, time.Minute)
	s.RecordFailure("demo@seguros.test")
	s.RecordSuccess("demo@seguros.test")
	s.RecordFailure("demo@seguros.test")
	locked, _ := s.IsLocked("demo@seguros.test")
	assert.False(t, locked)
}

func TestMemoryStore_ZeroMaxDisables(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(0, time.Minute)
	for i := 0; i < 10; i++ {
		s.RecordFailure("demo@seguros.test")
	}
	locked, _ := s.IsLocked("demo@seguros.test")
	assert.False(t, locked)
}
