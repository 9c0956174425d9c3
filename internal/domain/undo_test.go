package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoStack_PushPop(t *testing.T) {
	var stack UndoStack
	first := Checkpoint{Mode: Paused()}
	second := Checkpoint{Mode: Working(at(9, 0, 0))}

	stack = stack.Push(first, 5)
	stack = stack.Push(second, 5)
	require.Len(t, stack, 2)

	c, rest, ok := stack.Pop()
	require.True(t, ok)
	assert.Equal(t, second, c)
	assert.Len(t, rest, 1)

	c, rest, ok = rest.Pop()
	require.True(t, ok)
	assert.Equal(t, first, c)
	assert.Empty(t, rest)

	_, _, ok = rest.Pop()
	assert.False(t, ok)
}

func TestUndoStack_PushTrimsOldest(t *testing.T) {
	var stack UndoStack
	for i := range 5 {
		stack = stack.Push(Checkpoint{Mode: Working(at(9, i, 0))}, 3)
	}

	require.Len(t, stack, 3)
	assert.Equal(t, at(9, 2, 0), stack[0].Mode.WorkStart)
	assert.Equal(t, at(9, 4, 0), stack[2].Mode.WorkStart)
}

func TestUndoStack_DisabledDepth(t *testing.T) {
	stack := UndoStack{{Mode: Paused()}}

	assert.Empty(t, stack.Push(Checkpoint{Mode: Paused()}, 0))
	assert.Empty(t, stack.Push(Checkpoint{Mode: Paused()}, -1))
}

func TestUndoStack_PopThenPushKeepsPoppedIntact(t *testing.T) {
	stack := UndoStack{}.Push(Checkpoint{Mode: Paused()}, 5).Push(Checkpoint{Mode: Working(at(9, 0, 0))}, 5)

	top, rest, _ := stack.Pop()
	_ = rest.Push(Checkpoint{Mode: OnBreak(at(9, 0, 0), at(9, 30, 0))}, 5)

	assert.Equal(t, ModeWorking, top.Mode.Kind)
	assert.Equal(t, ModeWorking, stack[1].Mode.Kind)
}

func TestCheckpoint_RestoreCopiesHistory(t *testing.T) {
	s := TrackerState{
		Now:     at(10, 0, 0),
		Mode:    Working(at(9, 40, 0)),
		History: []Session{{WorkStart: at(9, 0, 0), BreakStart: at(9, 30, 0), BreakEnd: at(9, 40, 0)}},
	}

	c := CheckpointOf(s)
	s.History[0].BreakEnd = at(11, 0, 0)
	restored := c.Restore(at(10, 5, 0))

	assert.Equal(t, at(9, 40, 0), restored.History[0].BreakEnd)
	assert.Equal(t, s.Mode, restored.Mode)
	assert.Equal(t, at(10, 5, 0), restored.Now)
}
