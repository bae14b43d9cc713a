package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/hotel-admin/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestNewPaginationParams(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
	assert.Equal(t, 0, p.Offset())

	p = domain.NewPaginationParams(intPtr(3), intPtr(500))
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())

	p = domain.NewPaginationParams(intPtr(0), intPtr(-4))
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
}

func TestPaginationParams_Pages(t *testing.T) {
	p := domain.PaginationParams{Page: 1, Limit: 20}

	assert.Equal(t, 0, p.Pages(0))
	assert.Equal(t, 1, p.Pages(1))
	assert.Equal(t, 1, p.Pages(20))
	assert.Equal(t, 3, p.Pages(41))
}
