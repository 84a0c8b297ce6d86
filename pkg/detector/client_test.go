package detector_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anonydoc/anonydoc/pkg/detector"
	"github.com/anonydoc/anonydoc/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDetect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)

		var req struct {
			Text   string   `json:"text"`
			Labels []string `json:"labels"`
			Model  string   `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jean habite à Paris.", req.Text)
		assert.Equal(t, []string{"PERSON", "LOC"}, req.Labels)
		assert.Equal(t, "gliner_medium", req.Model)

		resp := map[string][]entity.Candidate{
			"entities": {
				{Start: 0, End: 4, Label: "PERSON", Text: "Jean", Score: 0.93},
				{Start: 15, End: 20, Label: "LOC", Text: "Paris", Score: 0.88},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := detector.NewClient(srv.URL, "gliner_medium", time.Second)
	got, err := c.Detect(testCtx(t), "Jean habite à Paris.", []string{"PERSON", "LOC"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Jean", got[0].Text)
	assert.Equal(t, 0.88, got[1].Score)
}

func TestClientDetectServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := detector.NewClient(srv.URL, "", time.Second)
	_, err := c.Detect(testCtx(t), "text", []string{"PERSON"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClientDetectBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := detector.NewClient(srv.URL, "", time.Second)
	_, err := c.Detect(testCtx(t), "text", []string{"PERSON"})
	require.Error(t, err)
}

func TestClientDetectEmptyInput(t *testing.T) {
	c := detector.NewClient("http://unused.invalid", "", time.Second)

	got, err := c.Detect(testCtx(t), "", []string{"PERSON"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = c.Detect(testCtx(t), "text", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
