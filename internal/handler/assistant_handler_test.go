package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/ai"
	"github.com/askiep/askiep-api/internal/models"
	"github.com/askiep/askiep-api/internal/service"
)

type cannedCompleter struct {
	response string
	err      error
}

func (c cannedCompleter) Complete(context.Context, string, string) (string, error) {
	return c.response, c.err
}

func newAssistantHandler(completer ai.Completer) *AssistantHandler {
	gateway := ai.NewGatewayWithCompleter(completer, nil)
	return NewAssistantHandler(service.NewAssistantService(gateway, nil, nil))
}

func TestAssistantHandlerCompare(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAssistantHandler(cannedCompleter{
		response: `{"improvements":["More speech minutes"],"regressions":[],"unchanged":["Reading goal"],"verdict":"Net improvement"}`,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"old_text":"v1","new_text":"v2"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Compare(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var comparison models.IepComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comparison))
	assert.Equal(t, "Net improvement", comparison.Verdict)
}

func TestAssistantHandlerCompareMalformedModelOutput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAssistantHandler(cannedCompleter{response: "I could not produce JSON, sorry."})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"old_text":"v1","new_text":"v2"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Compare(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var errBody map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.NotEmpty(t, errBody["error"])
}

func TestAssistantHandlerCompareMissingField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAssistantHandler(cannedCompleter{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(`{"old_text":"v1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Compare(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssistantHandlerGenerateLetter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAssistantHandler(cannedCompleter{response: "Dear IEP Team,\n\nI am writing to request..."})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"type":"evaluation request","details":"reading assessment overdue"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/letters/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.GenerateLetter(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out["letter"], "Dear IEP Team")
}
