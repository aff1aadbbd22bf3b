package helpers

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	testCases := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  uint64
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 25, wantOffset: 50, wantLimit: 25},
		{name: "zero page", page: 0, size: 5, wantOffset: 0, wantLimit: 5},
		{name: "oversized", page: 2, size: 1000, wantOffset: 10, wantLimit: DefaultPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tc.page, tc.size)
			assert.Equal(t, tc.wantOffset, offset)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(21, 3, 10)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 3, info.CurrentPage)
	assert.Equal(t, int64(21), info.TotalItems)

	clamped := NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, clamped.CurrentPage)

	empty := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/employees?page=2&size=30", nil)
	page, size := ParsePaginationParams(c)
	assert.Equal(t, 2, page)
	assert.Equal(t, 30, size)

	// gin caches parsed query values per context, so each case gets its own
	invalid, _ := gin.CreateTestContext(httptest.NewRecorder())
	invalid.Request = httptest.NewRequest("GET", "/employees?page=-1&size=abc", nil)
	page, size = ParsePaginationParams(invalid)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)

	huge, _ := gin.CreateTestContext(httptest.NewRecorder())
	huge.Request = httptest.NewRequest("GET", "/employees?page=9223372036854775807&size=100", nil)
	page, size = ParsePaginationParams(huge)
	assert.Equal(t, MaxPage, page)
	assert.Equal(t, MaxPageSize, size)
}

func TestCalculateOffsetLimit_HugePageDoesNotWrap(t *testing.T) {
	offset, limit := CalculateOffsetLimit(math.MaxInt, MaxPageSize)
	assert.Equal(t, uint64(MaxPageSize), limit)
	assert.Equal(t, uint64(MaxPage-1)*uint64(MaxPageSize), offset)
	assert.LessOrEqual(t, offset, uint64(math.MaxInt64))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("-5s", time.Minute))
}
