package aliasmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type color struct {
	name    string
	aliases []string
}

func (c *color) AliasKey() Key {
	return Key{Name: c.name, Aliases: c.aliases}
}

func TestMap_SetGetHas(t *testing.T) {
	m := New[int]()

	require.NoError(t, m.Set(Key{Name: "n", Aliases: []string{"a", "b"}}, 7))
	require.Equal(t, 1, m.Len())

	for _, name := range []string{"n", "a", "b"} {
		v, ok := m.Get(name)
		require.True(t, ok, name)
		require.Equal(t, 7, v)
		require.True(t, m.Has(name), name)
	}

	_, ok := m.Get("missing")
	require.False(t, ok)
	require.False(t, m.Has("missing"))
}

func TestMap_LenCountsPrimaryNamesOnly(t *testing.T) {
	m := New[string]()
	require.NoError(t, m.Set(Key{Name: "one", Aliases: []string{"1", "uno", "eins"}}, "1"))
	require.NoError(t, m.Set(Key{Name: "two"}, "2"))
	require.NoError(t, m.Set(Key{Name: "three", Aliases: []string{"3"}}, "3"))
	require.Equal(t, 3, m.Len())
}

func TestMap_ResetKeepsPositionAndSize(t *testing.T) {
	m := New[int]()
	require.NoError(t, m.Set(Key{Name: "a"}, 1))
	require.NoError(t, m.Set(Key{Name: "b"}, 2))
	require.NoError(t, m.Set(Key{Name: "a", Aliases: []string{"alpha"}}, 10))

	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"a", "b"}, slices.Collect(m.Keys()))
	v, _ := m.Get("alpha")
	require.Equal(t, 10, v)
}

func TestMap_ResetDropsStaleAliases(t *testing.T) {
	m := New[int]()
	require.NoError(t, m.Set(Key{Name: "a", Aliases: []string{"x", "y"}}, 1))
	require.NoError(t, m.Set(Key{Name: "a", Aliases: []string{"y", "z"}}, 2))

	require.False(t, m.Has("x"))
	require.True(t, m.Has("y"))
	require.True(t, m.Has("z"))
	require.Equal(t, []string{"y", "z"}, m.Aliases("a"))
}

func TestMap_DeleteUsesRecordedAliases(t *testing.T) {
	m := New[int]()
	require.NoError(t, m.Set(Key{Name: "n", Aliases: []string{"a", "b"}}, 1))

	// aliases passed to Delete are ignored in favour of the recorded ones
	removed, err := m.Delete(Key{Name: "n", Aliases: []string{"a"}})
	require.NoError(t, err)
	require.True(t, removed)
	for _, name := range []string{"n", "a", "b"} {
		require.False(t, m.Has(name), name)
	}
	require.Equal(t, 0, m.Len())

	removed, err = m.Delete(Key{Name: "n"})
	require.NoError(t, err)
	require.False(t, removed)
}

func TestMap_RemoveKeepsOrderOfOthers(t *testing.T) {
	m := New[int]()
	m.MustSet(Key{Name: "a"}, 1).MustSet(Key{Name: "b"}, 2).MustSet(Key{Name: "c"}, 3)

	require.True(t, m.Remove("b"))
	require.False(t, m.Remove("b"))
	require.Equal(t, []string{"a", "c"}, m.Names())
}

func TestMap_Clear(t *testing.T) {
	m := New[int]()
	m.MustSet(Key{Name: "a", Aliases: []string{"aa"}}, 1).MustSet(Key{Name: "b"}, 2)

	m.Clear()
	require.Equal(t, 0, m.Len())
	for _, name := range []string{"a", "aa", "b"} {
		require.False(t, m.Has(name), name)
	}

	require.NoError(t, m.Set(Key{Name: "c"}, 3))
	require.Equal(t, []string{"c"}, m.Names())
}

func TestMap_AddStoresValueItself(t *testing.T) {
	m := New[*color]()
	red := &color{name: "red", aliases: []string{"r", "crimson"}}
	require.NoError(t, m.Add(red))

	for _, name := range []string{"red", "r", "crimson"} {
		v, ok := m.Get(name)
		require.True(t, ok)
		require.Same(t, red, v)
	}
}

func TestMap_AddRejectsValueWithoutKey(t *testing.T) {
	m := New[int]()
	err := m.Add(42)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, 0, m.Len())

	var anyMap Map[any]
	require.ErrorIs(t, anyMap.Add(nil), ErrInvalidArgument)
}

func TestMap_KeySnapshot(t *testing.T) {
	m := New[*color]()
	c := &color{name: "green", aliases: []string{"g"}}
	require.NoError(t, m.Add(c))

	c.name = "lime"
	c.aliases[0] = "l"

	require.True(t, m.Has("green"))
	require.True(t, m.Has("g"))
	require.False(t, m.Has("l"))
	require.True(t, m.Remove("green"))
	require.False(t, m.Has("g"))
}

func TestMap_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{name: "empty name", key: Key{Aliases: []string{"a"}}},
		{name: "empty alias", key: Key{Name: "n", Aliases: []string{"a", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New[int]()
			m.MustSet(Key{Name: "keep", Aliases: []string{"k"}}, 1)

			require.ErrorIs(t, m.Set(tt.key, 2), ErrInvalidArgument)
			_, err := m.Delete(tt.key)
			require.ErrorIs(t, err, ErrInvalidArgument)

			require.Equal(t, []string{"keep"}, m.Names())
			require.True(t, m.Has("k"))
		})
	}

	require.Panics(t, func() { New[int]().MustSet(Key{}, 1) })
	require.ErrorIs(t, New[int]().ForEach(nil), ErrInvalidArgument)
}

func TestMap_DuplicateNamesInKeyCollapse(t *testing.T) {
	m := New[int]()
	require.NoError(t, m.Set(Key{Name: "n", Aliases: []string{"a", "n", "a"}}, 1))
	require.Equal(t, []string{"a"}, m.Aliases("n"))
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map[string]
	require.Equal(t, 0, m.Len())
	require.False(t, m.Has("x"))
	require.False(t, m.Remove("x"))

	require.NoError(t, m.Set(Key{Name: "x", Aliases: []string{"y"}}, "v"))
	v, ok := m.Get("y")
	require.True(t, ok)
	require.Equal(t, "v", v)
	require.Equal(t, LastWriterWins, m.Policy())
}

func TestMap_Scenario(t *testing.T) {
	m := New[any]()
	red := &color{name: "red", aliases: []string{"r", "crimson"}}

	require.NoError(t, m.Add(red))
	require.Equal(t, 1, m.Len())
	v, _ := m.Get("crimson")
	require.Same(t, red, v)

	require.NoError(t, m.Set(Key{Name: "blue"}, 42))
	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"red", "blue"}, slices.Collect(m.Keys()))

	removed, err := m.Delete(Key{Name: "red", Aliases: []string{"r", "crimson"}})
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 1, m.Len())
}

func TestMap_ResolveAndKey(t *testing.T) {
	m := New[int]()
	m.MustSet(Key{Name: "kubectl", Aliases: []string{"k", "kc"}}, 1)

	primary, ok := m.Resolve("kc")
	require.True(t, ok)
	require.Equal(t, "kubectl", primary)

	k, ok := m.Key("kubectl")
	require.True(t, ok)
	require.Equal(t, Key{Name: "kubectl", Aliases: []string{"k", "kc"}}, k)

	k.Aliases[0] = "changed"
	require.Equal(t, []string{"k", "kc"}, m.Aliases("kubectl"))

	_, ok = m.Key("k")
	require.False(t, ok)
	require.Nil(t, m.Aliases("k"))
}

func TestIs(t *testing.T) {
	require.True(t, Is(New[int]()))
	require.True(t, Is(New[*color]()))
	require.True(t, Is(&Map[string]{}))
	require.False(t, Is(Map[string]{}))
	require.False(t, Is(map[string]int{}))
	require.False(t, Is(nil))

	var am AliasMap = New[int]()
	require.Equal(t, 0, am.Len())
}
