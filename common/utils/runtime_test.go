package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type machine struct{}

//go:noinline
func (machine) Dispense() string {
	return GetCallerFunctionName(2)
}

func TestGetCallerFunctionName(t *testing.T) {
	assert.Equal(t, "Dispense", machine{}.Dispense())
	assert.Equal(t, "<unknown>", GetCallerFunctionName(1000))
}
