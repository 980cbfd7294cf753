package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/bankvault/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const (
		offsetErr = "invalid offset parameter: must be a non-negative integer"
		limitErr  = "invalid limit parameter: must be between 1 and 100"
	)

	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
		wantErr    string
	}{
		{name: "Defaults", query: "", wantOffset: 0, wantLimit: httputil.DefaultLimit},
		{name: "SecondPage", query: "offset=50&limit=50", wantOffset: 50, wantLimit: 50},
		{name: "MaxLimit", query: "limit=100", wantOffset: 0, wantLimit: httputil.MaxLimit},
		{name: "OffsetPastEnd", query: "offset=9999", wantOffset: 9999, wantLimit: httputil.DefaultLimit},
		{name: "NegativeOffset", query: "offset=-1", wantErr: offsetErr},
		{name: "TextOffset", query: "offset=first", wantErr: offsetErr},
		{name: "ZeroLimit", query: "limit=0", wantErr: limitErr},
		{name: "LimitAboveMax", query: "limit=101", wantErr: limitErr},
		{name: "TextLimit", query: "limit=all", wantErr: limitErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/v1/transactions?"+tt.query, nil)

			offset, limit, err := httputil.ParsePagination(c)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Zero(t, offset)
				assert.Zero(t, limit)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPaginate(t *testing.T) {
	ids := []string{"t-1", "t-2", "t-3", "t-4", "t-5"}

	tests := []struct {
		name          string
		items         []string
		offset, limit int
		want          []string
	}{
		{"FirstPage", ids, 0, 2, []string{"t-1", "t-2"}},
		{"PartialLastPage", ids, 3, 10, []string{"t-4", "t-5"}},
		{"OffsetAtEnd", ids, 5, 10, []string{}},
		{"NilItems", nil, 0, 10, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := httputil.Paginate(tt.items, tt.offset, tt.limit)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
