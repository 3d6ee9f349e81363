package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	orig := errors.New("connection refused")
	err := ConnectionError("localhost", 5432, "chemdb", "postgres", orig)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Len(t, gnErr.Vars, 5)
	assert.Contains(t, gnErr.Err.Error(), "localhost:5432/chemdb")
	assert.ErrorIs(t, gnErr.Err, orig)
}

func TestErrorCodes(t *testing.T) {
	orig := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"table check", TableCheckError(orig), errcode.DBTableCheckError},
		{"table exists", TableExistsCheckError("substances", orig),
			errcode.DBTableExistsCheckError},
		{"column", ColumnCheckError("substances", "structure", orig),
			errcode.DBColumnCheckError},
		{"query tables", QueryTablesError(orig), errcode.DBQueryTablesError},
		{"drop table", DropTableError("substances", orig), errcode.DBDropTableError},
		{"query views", QueryViewsError(orig), errcode.DBQueryViewsError},
		{"drop view", DropViewError("compounds", orig), errcode.DBDropViewError},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
	}
}
