package codec

import (
	"context"
	"fmt"
)

// MolfileCodec implements Serialize and Deserialize for structures that
// are kept as molfiles. Payload is the molfile text, which the RDKit
// PostgreSQL cartridge reads with mol_from_ctab. Parsing is left to an
// embedding codec that knows how to call a chemistry toolkit.
type MolfileCodec struct{}

// Serialize returns the molfile of the structure as bytes.
func (MolfileCodec) Serialize(s Structure) ([]byte, error) {
	if s.Molfile == "" {
		return nil, fmt.Errorf("%w: empty structure", ErrParse)
	}
	return []byte(s.Molfile), nil
}

// Deserialize reads a structure from a molfile payload.
func (MolfileCodec) Deserialize(payload []byte) (Structure, error) {
	return ReadMolfile(payload)
}

// Parse of MolfileCodec treats the notation as a molfile.
func (MolfileCodec) Parse(_ context.Context, notation string) (Structure, error) {
	return ReadMolfile([]byte(notation))
}
