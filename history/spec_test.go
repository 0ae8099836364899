package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalix/causalix/history"
)

// TestRWMemory_ReadWrite walks the state machine step by step.
func TestRWMemory_ReadWrite(t *testing.T) {
	var s history.RWMemorySpecification
	st1 := s.Start()

	st2, op1 := s.Step(st1, history.Instruction{Method: history.MethodRead, Key: "key1"})
	assert.Equal(t, history.ReadInit("key1"), op1)

	st3, op2 := s.Step(st2, history.Instruction{Method: history.MethodWrite, Key: "key1", Value: "hello"})
	assert.Equal(t, history.Write("key1", "hello"), op2)

	_, op3 := s.Step(st3, history.Instruction{Method: history.MethodRead, Key: "key1"})
	assert.Equal(t, history.Read("key1", "hello"), op3)
}

// TestRWMemory_StatesAreSnapshots: a write must not disturb states
// handed out earlier.
func TestRWMemory_StatesAreSnapshots(t *testing.T) {
	var s history.RWMemorySpecification
	st1, _ := s.Step(s.Start(), history.Instruction{Method: history.MethodWrite, Key: "k", Value: 1})
	_, _ = s.Step(st1, history.Instruction{Method: history.MethodWrite, Key: "k", Value: 2})

	_, again := s.Step(st1, history.Instruction{Method: history.MethodRead, Key: "k"})
	assert.Equal(t, history.Read("k", 1), again, "earlier snapshot changed underfoot")
}

// TestSatisfies accepts a coherent log.
func TestSatisfies(t *testing.T) {
	log := []history.Entry{
		{Op: history.ReadInit("key1"), Verify: true},
		{Op: history.Write("key1", "hello"), Verify: true},
		{Op: history.Read("key1", "hello"), Verify: true},
	}
	assert.True(t, history.Satisfies(history.RWMemorySpecification{}, log))
}

// TestSatisfies_RejectsWrongReturn rejects a mismatched read.
func TestSatisfies_RejectsWrongReturn(t *testing.T) {
	log := []history.Entry{
		{Op: history.ReadInit("key1"), Verify: true},
		{Op: history.Write("key1", "hello"), Verify: true},
		{Op: history.Read("key1", "world"), Verify: true},
	}
	assert.False(t, history.Satisfies(history.RWMemorySpecification{}, log))
}

// TestSatisfies_SkipsUnverifiedEntries: instructions advance state
// without being checked.
func TestSatisfies_SkipsUnverifiedEntries(t *testing.T) {
	log := []history.Entry{
		{Op: history.Read("key1", "garbage")}, // unverified; return ignored
		{Op: history.Write("key1", "hello")},  // unverified write still binds
		{Op: history.Read("key1", "hello"), Verify: true},
	}
	assert.True(t, history.Satisfies(history.RWMemorySpecification{}, log))
}

// TestSatisfies_EmptyLog is vacuously true.
func TestSatisfies_EmptyLog(t *testing.T) {
	assert.True(t, history.Satisfies(history.RWMemorySpecification{}, nil))
}

// TestOperationStrings pins the operation and entry rendering.
func TestOperationStrings(t *testing.T) {
	assert.Equal(t, "wr(x,1)", history.Write("x", 1).String())
	assert.Equal(t, "rd(x)=2", history.Read("x", 2).String())
	assert.Equal(t, "rd(x)=init", history.ReadInit("x").String())
	assert.Equal(t, "rd(x)", history.Read("x", 2).Instruction().String())

	e := history.Entry{Op: history.Read("x", 2)}
	require.Equal(t, "rd(x)", e.String())
	e.Verify = true
	assert.Equal(t, "rd(x)=2", e.String())
}
