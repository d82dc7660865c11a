package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"dutchghostwriter/backend/internal/handler"
)

func TestTextHandler_Segment(t *testing.T) {
	h := handler.NewTextHandler()
	e := newTestEcho()

	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/text/segment", map[string]string{"text": "Hello world. How are you? Fine!"}))
	require.NoError(t, h.Segment(c))

	var resp handler.SegmentResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, []string{"Hello world.", "How are you?", "Fine!"}, resp.Sentences)
	require.Equal(t, "Hello world.", resp.Title)
	require.Equal(t, 31, resp.Length)
}

func TestTextHandler_Segment_Empty(t *testing.T) {
	h := handler.NewTextHandler()
	e := newTestEcho()

	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/text/segment", map[string]string{"text": "  "}))
	require.NoError(t, h.Segment(c))

	var resp handler.SegmentResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Empty(t, resp.Sentences)
	require.NotNil(t, resp.Sentences)
	require.Equal(t, "Untitled", resp.Title)
}
