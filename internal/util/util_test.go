package util

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	a := map[string]string{"ds": "2024-01-01", "hr": "3"}
	b := map[string]string{"hr": "3", "ds": "2024-01-01"}
	c := map[string]string{"ds": "2024-01-02", "hr": "3"}

	ha, err := Hash(a)
	assert.NoError(t, err)
	hb, err := Hash(b)
	assert.NoError(t, err)
	hc, err := Hash(c)
	assert.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.NotEqual(t, ha, hc)
}

func TestLazy(t *testing.T) {
	var calls int32
	l := LazyValue(func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.Get()
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLazy_Error(t *testing.T) {
	boom := errors.New("boom")
	l := LazyValue(func() (int, error) { return 0, boom })
	_, err := l.Get()
	assert.ErrorIs(t, err, boom)
	_, err = l.Get()
	assert.ErrorIs(t, err, boom)
}

func TestOptional(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.Equal(t, mo.Some(1), GetMapValueOptional(m, "a"))
	assert.True(t, GetMapValueOptional(m, "b").IsAbsent())
}

func TestKeySet(t *testing.T) {
	s := KeySet(map[string]int{"a": 1, "b": 2})
	assert.True(t, s.Contains("a", "b"))
	assert.Equal(t, 2, s.Cardinality())
	assert.Equal(t, 3, MaxInt(2, 3))
}
