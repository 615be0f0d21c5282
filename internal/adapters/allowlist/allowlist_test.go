package allowlist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthorizedIgnoresCaseAndSpace(t *testing.T) {
	t.Parallel()

	list := New([]string{" Alice@Example.com ", "", "bob@example.com"})

	assert.True(t, list.IsAuthorized("alice@example.com"))
	assert.True(t, list.IsAuthorized("BOB@example.com "))
	assert.False(t, list.IsAuthorized("mallory@example.com"))
	assert.False(t, list.IsAuthorized(""))
	assert.Equal(t, 2, list.Len())
}

func TestEmptyListAuthorizesNobody(t *testing.T) {
	t.Parallel()

	assert.False(t, New(nil).IsAuthorized("alice@example.com"))
	assert.False(t, (&Allowlist{}).IsAuthorized("alice@example.com"))
}

func TestReplaceIsSafeWithConcurrentChecks(t *testing.T) {
	t.Parallel()

	list := New([]string{"alice@example.com"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				list.IsAuthorized("alice@example.com")
			}
		}()
	}
	list.Replace([]string{"bob@example.com"})
	wg.Wait()

	assert.False(t, list.IsAuthorized("alice@example.com"))
	assert.True(t, list.IsAuthorized("bob@example.com"))
}
