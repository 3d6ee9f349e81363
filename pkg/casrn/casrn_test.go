package casrn_test

import (
	"testing"

	"github.com/gnames/chemdb/pkg/casrn"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		msg, inp, res string
		ok            bool
	}{
		{"formaldehyde", "50-00-0", "50-00-0", true},
		{"no hyphens", "7732185", "7732-18-5", true},
		{"integer-like", " 57136", "57-13-6", true},
		{"long", "1333-74-0", "1333-74-0", true},
		{"wrong check digit", "50-00-5", "50-00-5", false},
		{"double hyphens", "50--00--0 ", "50--00--0", false},
		{"spaces", "50 00 0", "50 00 0", false},
		{"too short", "1-2-3", "1-2-3", false},
		{"empty", "", "", false},
		{"letters", "NOCAS_1234", "NOCAS_1234", false},
		{"digits pass check", "NOCAS_12340", "NOCAS_12340", false},
	}

	for _, v := range tests {
		res, ok := casrn.Validate(v.inp)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.res, res, v.msg)
		assert.Equal(t, v.ok, casrn.IsValid(v.inp), v.msg)
	}
}
