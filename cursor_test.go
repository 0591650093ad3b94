package rxsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorPeekAndEat(t *testing.T) {
	c := newCursor("ab")
	r, ok := c.peek()
	require.True(t, ok)
	require.Equal(t, 'a', r)

	r2, ok2 := c.peekAt(1)
	require.True(t, ok2)
	require.Equal(t, 'b', r2)

	require.Equal(t, 'a', c.eat())
	require.Equal(t, 'b', c.eat())
	require.True(t, c.isEmpty())

	_, ok3 := c.peek()
	require.False(t, ok3)
}

func TestCursorCheckpointRestore(t *testing.T) {
	c := newCursor("hello")
	mark := c.checkpoint()
	c.eat()
	c.eat()
	c.restore(mark)
	require.Equal(t, 'h', c.eat())
}

func TestCursorTryEat(t *testing.T) {
	c := newCursor("xyz")
	require.False(t, c.tryEat('y'))
	require.True(t, c.tryEat('x'))
	require.True(t, c.tryEatSeq("yz"))
	require.True(t, c.isEmpty())
}

func TestTryEatingRestoresOnFailure(t *testing.T) {
	c := newCursor("abc")
	_, ok := tryEating(c, func() (int, bool) {
		c.eat()
		c.eat()
		return 0, false
	})
	require.False(t, ok)
	require.Equal(t, 0, c.checkpoint())
}

func TestTryEatingKeepsPositionOnSuccess(t *testing.T) {
	c := newCursor("abc")
	v, ok := tryEating(c, func() (rune, bool) {
		return c.eat(), true
	})
	require.True(t, ok)
	require.Equal(t, 'a', v)
	require.Equal(t, 1, c.checkpoint())
}

func TestTryEatingDoesNotRestoreOnPanic(t *testing.T) {
	c := newCursor("abc")
	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.Equal(t, 2, c.checkpoint())
	}()
	tryEating(c, func() (int, bool) {
		c.eat()
		c.eat()
		fail(ErrMisc, Position{Begin: c.checkpoint(), End: c.checkpoint()}, "boom")
		return 0, true
	})
}

func TestRecordLoc(t *testing.T) {
	c := newCursor("abc")
	c.eat()
	loc := recordLoc(c, func() string {
		c.eat()
		c.eat()
		return "bc"
	})
	require.Equal(t, "bc", loc.Value)
	require.Equal(t, Position{Begin: 1, End: 3}, loc.Pos)
}
