package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/viralsweeper/internal/config"
)

func TestCreateRandSeeded(t *testing.T) {
	seed := &config.Seed{Hi: 1, Lo: 2}
	a, b := createRand(seed), createRand(seed)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestCreateRandUnseeded(t *testing.T) {
	assert.NotEqual(t, createRand(nil).Uint64(), createRand(nil).Uint64())
}
