package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	"github.com/allisson/bankvault/internal/banking/seed"
)

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testSeed(t *testing.T) seed.Data {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return seed.Data{
		Profile: bankingDomain.Profile{
			UserName:       strPtr("Seed User"),
			AccountBalance: floatPtr(10),
			AccountNumber:  strPtr("1111222233334444"),
		},
		Transactions: []bankingDomain.Transaction{
			{ID: "s1", Title: "Seed One", Amount: -1, Type: bankingDomain.Debit},
			{ID: "s2", Title: "Seed Two", Amount: 2, Type: bankingDomain.Credit},
			{ID: "s3", Title: "Seed Three", Amount: 3, Type: bankingDomain.Credit},
		},
	}
}
