package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityNewestFirst(t *testing.T) {
	s := NewActivityService()
	s.Log("Riaz", "first")
	s.Log("", "second")

	logs := s.List()
	assert.Len(t, logs, 2)
	assert.Equal(t, "second", logs[0].Action)
	assert.Equal(t, "System", logs[0].User)
	assert.NotEqual(t, logs[0].ID, logs[1].ID)
}
