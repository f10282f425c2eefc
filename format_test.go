package typederr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

func TestFormat_ConciseAndQuoted(t *testing.T) {
	f := newTestFactory(t, WithTypeInMessage(true))
	err := f.New("lookup %s failed", "user").MustTag("DBError", map[string]any{"table": "users"})

	assert.Equal(t, "lookup user failed --DBError", fmt.Sprintf("%v", err))
	assert.Equal(t, err.Message(), fmt.Sprintf("%s", err))
	assert.Equal(t, `"lookup user failed --DBError"`, fmt.Sprintf("%q", err))
}

func TestFormat_Verbose(t *testing.T) {
	f := newTestFactory(t)
	err := f.New("lookup %s failed", "user", errors.New("db timeout")).
		MustTag("DBError", map[string]any{"table": "users", "retry": true})

	verbose := fmt.Sprintf("%+v", err)
	wantFrags := []string{
		"type=DBError",
		`msg="lookup user failed"`,
		"\nctx:",
		" retry=true",
		" table=users",
		"\ncause: db timeout",
		"\nstack:",
		"TestFormat_Verbose",
	}
	for _, w := range wantFrags {
		assert.Contains(t, verbose, w)
	}
	// Context keys are sorted.
	assert.True(t, containsInOrder(verbose, "\nctx:", " retry=true", " table=users", "\ncause:", "\nstack:"),
		"verbose sections out of order: %q", verbose)
}

func TestFormat_VerboseUntaggedAndNested(t *testing.T) {
	f := newTestFactory(t)
	inner := f.New("inner").MustTag("AuthError", nil)
	outer := f.New("outer", inner)

	verbose := fmt.Sprintf("%+v", outer)
	assert.True(t, strings.HasPrefix(verbose, `type=- msg="outer"`), verbose)
	assert.True(t, containsInOrder(verbose, "\ncause: ", `type=AuthError msg="inner"`),
		"nested cause not formatted verbosely: %q", verbose)
}
