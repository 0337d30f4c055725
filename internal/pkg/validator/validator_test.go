package validator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"buildconnect/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

func contextWithBody(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c
}

func detailsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	return ae.Details
}

func TestBindJSON_Valid(t *testing.T) {
	var req sampleRequest
	err := BindJSON(contextWithBody(`{"email":"a@b.com","rating":4}`), &req)

	require.NoError(t, err)
	assert.Equal(t, 4, req.Rating)
}

func TestBindJSON_UnknownField(t *testing.T) {
	var req sampleRequest
	err := BindJSON(contextWithBody(`{"email":"a@b.com","rating":4,"role":"admin"}`), &req)

	assert.Equal(t, "unknown field", detailsOf(t, err)["role"])
}

func TestBindJSON_FieldErrorsUseJSONNames(t *testing.T) {
	var req sampleRequest
	err := BindJSON(contextWithBody(`{"email":"nope","rating":9}`), &req)

	details := detailsOf(t, err)
	assert.Equal(t, "email", details["email"])
	assert.Equal(t, "lte=5", details["rating"])
}

func TestBindJSON_WrongType(t *testing.T) {
	var req sampleRequest
	err := BindJSON(contextWithBody(`{"email":"a@b.com","rating":"five"}`), &req)

	assert.Contains(t, detailsOf(t, err)["rating"], "must be")
}

func TestBindJSON_EmptyBody(t *testing.T) {
	var req sampleRequest
	err := BindJSON(contextWithBody(``), &req)

	assert.Equal(t, "empty body", detailsOf(t, err)["_"])
}
