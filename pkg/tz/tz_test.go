package tz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medsite/pkg/tz"
)

func TestBishkekOffset(t *testing.T) {
	at := time.Date(2025, time.July, 1, 12, 0, 0, 0, tz.Bishkek)
	_, offset := at.Zone()
	assert.Equal(t, 6*60*60, offset)
}
