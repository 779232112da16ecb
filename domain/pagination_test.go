package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(-4, 0)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 1, p.PerPage)

	p = NewPagination(6, 3)
	assert.Equal(t, Pagination{Skip: 6, PerPage: 3}, p)
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		perPage   int
		requested int
		wantPage  int
		wantMax   int
		wantStart int
	}{
		{"seven rows third page", 7, 3, 5, 2, 2, 6},
		{"negative page", 7, 3, -1, 0, 2, 0},
		{"empty table", 0, 3, 3, 0, 0, 0},
		{"exact multiple", 6, 3, 1, 1, 1, 3},
		{"single row", 1, 3, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.total, tt.perPage, tt.requested)
			assert.Equal(t, tt.wantPage, info.Page)
			assert.Equal(t, tt.wantMax, info.MaxPage)
			assert.Equal(t, tt.wantStart, info.StartIndex)
			assert.Equal(t, tt.total, info.Total)
		})
	}
}

func TestPageInfoNavigation(t *testing.T) {
	info := NewPageInfo(7, 3, 1)
	assert.True(t, info.HasPrev())
	assert.True(t, info.HasNext())
	assert.Equal(t, 0, info.PrevPage())
	assert.Equal(t, 2, info.NextPage())
	assert.Equal(t, Pagination{Skip: 3, PerPage: 3}, info.Pagination())

	last := NewPageInfo(7, 3, 2)
	assert.False(t, last.HasNext())
	first := NewPageInfo(7, 3, 0)
	assert.False(t, first.HasPrev())
}
