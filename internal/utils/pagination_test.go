package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func paramsFromQuery(t *testing.T, query string) *PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParamsRejectsUnknownSortField(t *testing.T) {
	params := paramsFromQuery(t, "sort=password_hash&order=up")
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsClampsPageSize(t *testing.T) {
	params := paramsFromQuery(t, "page=0&page_size=9999")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MaxPageSize, params.PageSize)
}

func TestGetSearchFilterEscapesRegexMetacharacters(t *testing.T) {
	params := &PaginationParams{Search: "B 1234 (ABC)"}
	filter := params.GetSearchFilter([]string{"vehicle_data.plat_nomor"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 1)

	field := or[0]["vehicle_data.plat_nomor"].(bson.M)
	// Parentheses arrive quoted, so the term matches literally
	assert.Equal(t, `B 1234 \(ABC\)`, field["$regex"])
}
