package response_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossfn/crossfn/core/response"
)

func TestValueAppliesBodyWithDefaultStatus(t *testing.T) {
	t.Parallel()

	w := response.NewWriter(nil)
	require.NoError(t, response.Value(map[string]string{"foo": "bar"}).Apply(w))

	assert.Equal(t, map[string]string{"foo": "bar"}, w.Body())
	assert.Equal(t, http.StatusOK, w.Status())
}

func TestRespondAppliesStatusAndHeaders(t *testing.T) {
	t.Parallel()

	w := response.NewWriter(nil)
	r := response.Respond("created",
		response.WithStatus(http.StatusCreated),
		response.WithHeader("Location", "/things/1"),
	)
	require.NoError(t, r.Apply(w))

	assert.Equal(t, "created", w.Body())
	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, "/things/1", w.Header("Location"))
}

func TestDeferredLeavesWriterUntouched(t *testing.T) {
	t.Parallel()

	w := response.NewWriter(nil)
	w.SetBody("handler set this").SetStatus(http.StatusAccepted)
	require.NoError(t, response.Deferred().Apply(w))

	assert.Equal(t, "handler set this", w.Body())
	assert.Equal(t, http.StatusAccepted, w.Status())
	assert.False(t, w.Finalized())
}

func TestApplySkipsFinalizedWriter(t *testing.T) {
	t.Parallel()

	w := response.NewWriter(nil)
	require.NoError(t, w.Finalize("explicit", 200))

	require.NoError(t, response.Value("from return").Apply(w))
	assert.Equal(t, "explicit", w.Body(), "explicit completion wins over result normalization")
}
