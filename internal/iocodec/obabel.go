// Package iocodec binds codec.StructureCodec to the Open Babel command
// line tool. Open Babel converts InChI strings into MDL molfiles, which
// become structure payloads.
package iocodec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/gnames/chemdb/pkg/codec"
	"github.com/gnames/chemdb/pkg/config"
)

type obabel struct {
	codec.MolfileCodec
	path    string
	timeout time.Duration
}

// New creates a StructureCodec that runs obabel for every notation.
// It returns an error if the executable cannot be found.
func New(cfg config.CodecConfig) (codec.StructureCodec, error) {
	path, err := exec.LookPath(cfg.ObabelPath)
	if err != nil {
		return nil, NotFoundError(cfg.ObabelPath, err)
	}
	res := &obabel{
		path:    path,
		timeout: time.Duration(cfg.TimeoutSec) * time.Second,
	}
	return res, nil
}

// Parse converts an InChI string into a structure.
func (o *obabel) Parse(
	ctx context.Context,
	notation string,
) (codec.Structure, error) {
	var res codec.Structure
	notation = strings.TrimSpace(notation)
	if !strings.HasPrefix(notation, "InChI=") {
		return res, fmt.Errorf("%w: not an InChI '%s'", codec.ErrParse, notation)
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, o.path, "-iinchi", "-:"+notation, "-omol")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return res, fmt.Errorf("%w: conversion took longer than %s",
				codec.ErrTimeout, o.timeout)
		}
		return res, ctx.Err()
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return res, err
	}
	if err != nil || stdout.Len() == 0 {
		return res, fmt.Errorf("%w: %s", codec.ErrParse, lastLine(stderr.String()))
	}

	return codec.ReadMolfile(stdout.Bytes())
}

// lastLine returns the last non-empty line of obabel diagnostics.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return "no output"
}
