package codec_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/chemdb/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formaldehyde as returned by obabel -iinchi -:"InChI=1S/CH2O/c1-2/h1H2" -omol
const formaldehyde = `
 OpenBabel10152614552D

  2  1  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    0.0000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  2  0  0  0  0
M  END
`

const benzeneV3000 = `
  chemdb

  0  0  0     0  0            999 V3000
M  V30 BEGIN CTAB
M  V30 COUNTS 6 6 0 0 0
M  V30 END CTAB
M  END
`

func TestReadMolfile(t *testing.T) {
	tests := []struct {
		msg          string
		data         string
		atoms, bonds int
		err          bool
	}{
		{"v2000", formaldehyde, 2, 1, false},
		{"v3000", benzeneV3000, 6, 6, false},
		{"sdf tail", formaldehyde + "> <ID>\nX\n\n$$$$\n", 2, 1, false},
		{"no end", "\n\n\n  2  1\n", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"bad counts", "\n\n\n  x  y\nM  END\n", 0, 0, true},
	}

	for _, v := range tests {
		s, err := codec.ReadMolfile([]byte(v.data))
		if v.err {
			require.Error(t, err, v.msg)
			assert.True(t, errors.Is(err, codec.ErrParse), v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.atoms, s.Atoms, v.msg)
		assert.Equal(t, v.bonds, s.Bonds, v.msg)
	}
}

func TestStructureEqual(t *testing.T) {
	s1, err := codec.ReadMolfile([]byte(formaldehyde))
	require.NoError(t, err)

	// same connection table produced at a different time
	other := "\n OpenBabel01012500002D" + formaldehyde[len("\n OpenBabel10152614552D"):]
	s2, err := codec.ReadMolfile([]byte(other))
	require.NoError(t, err)
	assert.True(t, s1.Equal(s2))

	s3, err := codec.ReadMolfile([]byte(benzeneV3000))
	require.NoError(t, err)
	assert.False(t, s1.Equal(s3))
}

func TestMolfileCodecRoundTrip(t *testing.T) {
	var c codec.StructureCodec = codec.MolfileCodec{}
	for _, v := range []string{formaldehyde, benzeneV3000} {
		s, err := c.Parse(context.Background(), v)
		require.NoError(t, err)

		payload, err := c.Serialize(s)
		require.NoError(t, err)

		back, err := c.Deserialize(payload)
		require.NoError(t, err)
		assert.True(t, s.Equal(back))
	}

	_, err := c.Serialize(codec.Structure{})
	assert.Error(t, err)
}
