package typederr

import (
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTag_ConcurrentSingleWinner_Synctest races many goroutines tagging the
// same instance inside a synctest bubble: exactly one Tag may succeed and the
// rest must observe ErrAlreadyTagged.
func TestTag_ConcurrentSingleWinner_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newTestFactory(t, WithTypeInMessage(true))
		e := f.New("contended")

		const N = 64
		var wins, losses atomic.Int32
		done := make(chan string, N)

		for i := 0; i < N; i++ {
			category := "DBError"
			if i%2 == 1 {
				category = "AuthError"
			}
			go func() {
				_, err := e.Tag(category, nil)
				switch {
				case err == nil:
					wins.Add(1)
					done <- category
				case errors.Is(err, ErrAlreadyTagged):
					losses.Add(1)
					done <- ""
				default:
					done <- ""
				}
			}()
		}
		synctest.Wait()

		winner := ""
		for i := 0; i < N; i++ {
			if c := <-done; c != "" {
				winner = c
			}
		}
		require.EqualValues(t, 1, wins.Load(), "exactly one Tag may succeed")
		require.EqualValues(t, N-1, losses.Load())
		got, ok := e.Category()
		require.True(t, ok)
		assert.Equal(t, winner, got)
		assert.Equal(t, "contended --"+winner, e.Message())
	})
}

// TestFactory_SharedAcrossGoroutines_Synctest builds and tags instances from
// one factory concurrently; instances never share state.
func TestFactory_SharedAcrossGoroutines_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newTestFactory(t)

		const N = 32
		results := make(chan *Instance, N)
		for i := 0; i < N; i++ {
			go func() {
				results <- f.New("row %d", i).MustTag("DBError", map[string]any{"rows": i})
			}()
		}
		synctest.Wait()

		seen := make(map[float64]bool, N)
		for i := 0; i < N; i++ {
			e := <-results
			rows, ok := e.Context()["rows"].(float64)
			require.True(t, ok)
			require.False(t, seen[rows], "duplicate context rows=%v", rows)
			seen[rows] = true
			assert.True(t, f.Is(e, "DBError"), "instance lost its tag: %v", e)
		}
	})
}
