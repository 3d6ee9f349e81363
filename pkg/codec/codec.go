// Package codec defines the StructureCodec contract: conversion of a
// textual structure notation into an in-memory structure and its opaque
// serialized form. Chemistry itself is delegated to an external toolkit,
// this package only knows how to read the MDL molfile the toolkit returns.
package codec

import (
	"context"
	"errors"
)

// ErrParse marks a per-record failure to convert a notation into a
// structure. Such failures are deterministic and must not be retried.
// Any codec error that does not wrap ErrParse is an infrastructure failure.
var ErrParse = errors.New("cannot convert structure notation")

// ErrTimeout marks a conversion that did not finish in time. The record
// is dropped like an unparsable one, but it is counted separately,
// because the outcome depends on machine load.
var ErrTimeout = errors.New("structure conversion timed out")

// StructureCodec converts structure notations into structures and
// structures into opaque payloads and back.
//
// For every notation that parses, Deserialize(Serialize(s)) must be
// structurally equal to s.
type StructureCodec interface {
	// Parse converts a textual notation (InChI) into a structure.
	// Returns an error wrapping ErrParse if the notation cannot be parsed.
	Parse(ctx context.Context, notation string) (Structure, error)

	// Serialize converts a structure into an opaque binary payload.
	Serialize(s Structure) ([]byte, error)

	// Deserialize converts a payload created by Serialize back into a
	// structure.
	Deserialize(payload []byte) (Structure, error)
}
