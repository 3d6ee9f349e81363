package iocodec_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/chemdb/internal/iocodec"
	"github.com/gnames/chemdb/pkg/codec"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObabel imitates obabel output for formaldehyde and fails on
// everything else the way obabel does: empty stdout and a message.
const fakeObabel = `#!/bin/sh
case "$2" in
  "-:InChI=1S/CH2O/c1-2/h1H2")
    printf '\n OpenBabel10152614552D\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n'
    printf '    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n'
    printf '    0.0000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0\n'
    printf '  1  2  2  0  0  0  0\nM  END\n'
    echo "1 molecule converted" >&2
    ;;
  "-:InChI=1S/slow")
    sleep 5
    ;;
  *)
    echo "InChI error: Wrong formula" >&2
    echo "0 molecules converted" >&2
    ;;
esac
`

func newFake(t *testing.T, timeout int) codec.StructureCodec {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "obabel")
	require.NoError(t, os.WriteFile(path, []byte(fakeObabel), 0755))

	c, err := iocodec.New(config.CodecConfig{ObabelPath: path, TimeoutSec: timeout})
	require.NoError(t, err)
	return c
}

func TestNewNotFound(t *testing.T) {
	_, err := iocodec.New(config.CodecConfig{
		ObabelPath: "/nonexistent/obabel",
		TimeoutSec: 1,
	})
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CodecNotFoundError, gnErr.Code)
}

func TestParse(t *testing.T) {
	c := newFake(t, 10)
	ctx := context.Background()

	s, err := c.Parse(ctx, "InChI=1S/CH2O/c1-2/h1H2")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Atoms)
	assert.Equal(t, 1, s.Bonds)

	payload, err := c.Serialize(s)
	require.NoError(t, err)
	back, err := c.Deserialize(payload)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

func TestParseFailures(t *testing.T) {
	c := newFake(t, 1)
	ctx := context.Background()

	tests := []struct {
		msg, inp, reason string
	}{
		{"toolkit rejects", "InChI=1S/Xx", "Wrong formula"},
		{"not an inchi", "C=O", "not an InChI"},
	}

	for _, v := range tests {
		_, err := c.Parse(ctx, v.inp)
		require.Error(t, err, v.msg)
		assert.ErrorIs(t, err, codec.ErrParse, v.msg)
		assert.Contains(t, err.Error(), v.reason, v.msg)
	}
}

func TestParseTimeout(t *testing.T) {
	c := newFake(t, 1)

	_, err := c.Parse(context.Background(), "InChI=1S/slow")
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrTimeout)
	assert.False(t, errors.Is(err, codec.ErrParse))
	assert.Contains(t, err.Error(), "longer than 1s")
}

func TestParseCancelled(t *testing.T) {
	c := newFake(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Parse(ctx, "InChI=1S/CH2O/c1-2/h1H2")
	require.Error(t, err)
	assert.False(t, errors.Is(err, codec.ErrParse))
}
