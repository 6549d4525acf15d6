package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Attributes []int    `json:"attributes"`
	Quality    float64  `json:"quality"`
	Z          *float64 `json:"z,omitempty"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, Default, c)

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsInteroperate(t *testing.T) {
	z := 3.5
	in := entry{Attributes: []int{0, 4}, Quality: 0.375, Z: &z}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			var out entry
			b, err := enc.Marshal(in)
			require.NoError(t, err)
			require.NoError(t, dec.Unmarshal(b, &out), enc.Name()+"->"+dec.Name())
			assert.Equal(t, in, out)
		}
	}
}

func TestOmitEmpty(t *testing.T) {
	b, err := Default.Marshal(entry{Attributes: []int{}, Quality: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"attributes":[],"quality":1}`, string(b))
}
