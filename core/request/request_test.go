package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossfn/crossfn/core/request"
)

func TestHeaderCaseInsensitive(t *testing.T) {
	t.Parallel()

	req := request.New("GET", "/")
	req.Headers.Set("Content-Type", "application/json")

	assert.Equal(t, "application/json", req.Header("content-type"))
	assert.Equal(t, "application/json", req.Header("CONTENT-TYPE"))
	assert.Empty(t, req.Header("X-Missing"))
}

func TestQueryAndParams(t *testing.T) {
	t.Parallel()

	req := request.New("GET", "/things/7")
	req.Query.Set("page", "2")
	req.Params["id"] = "7"

	assert.Equal(t, "2", req.QueryValue("page"))
	assert.Empty(t, req.QueryValue("missing"))
	assert.Equal(t, "7", req.Param("id"))
}

func TestZeroValueAccessorsAreSafe(t *testing.T) {
	t.Parallel()

	var req request.Request
	assert.Empty(t, req.Header("Accept"))
	assert.Empty(t, req.QueryValue("q"))
	assert.Empty(t, req.Param("id"))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	req := request.New("POST", "/orders")
	req.Body = []byte(`{"name":"widget","qty":3}`)

	var in struct {
		Name string `json:"name"`
		Qty  int    `json:"qty"`
	}
	require.NoError(t, req.DecodeJSON(&in))
	assert.Equal(t, "widget", in.Name)
	assert.Equal(t, 3, in.Qty)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	req := request.New("POST", "/orders")
	req.Body = []byte(`{"name":"widget","extra":true}`)

	var in struct {
		Name string `json:"name"`
	}
	assert.Error(t, req.DecodeJSON(&in))
}
