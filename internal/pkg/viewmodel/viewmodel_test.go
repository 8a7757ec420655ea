package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeDate(t *testing.T) {
	date := time.Date(2025, 3, 7, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "07.03.2025, 09:05", HumanizeDate(date))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 4)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, []int{1, 2, 3, 4}, p.Pages)

	empty := NewPagination(1, 0)
	assert.Empty(t, empty.Pages)
}
