package parser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProfilesGitHub(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/janesmith", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login": "janesmith", "public_repos": 12}`))
	}))
	defer server.Close()

	e := NewProfileEnricher(server.URL, 5*time.Second)
	linkedinData, githubData := e.FetchProfiles(context.Background(), "", "https://github.com/janesmith")

	// LinkedIn 公开API需要授权，始终返回空档案
	require.NotNil(t, linkedinData)
	assert.Empty(t, linkedinData)

	assert.Equal(t, "janesmith", githubData["login"])
	assert.Equal(t, float64(12), githubData["public_repos"])
}

func TestFetchProfilesGitHubErrorAbsorbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	e := NewProfileEnricher(server.URL, 5*time.Second)
	_, githubData := e.FetchProfiles(context.Background(), "", "https://github.com/nobody")

	// 非200响应被吸收为空档案
	require.NotNil(t, githubData)
	assert.Empty(t, githubData)
}

func TestFetchProfilesEmptyURLs(t *testing.T) {
	e := NewProfileEnricher("", time.Second)

	linkedinData, githubData := e.FetchProfiles(context.Background(), "", "")

	assert.Empty(t, linkedinData)
	assert.Empty(t, githubData)
}
