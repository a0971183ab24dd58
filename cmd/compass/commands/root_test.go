package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// fakePostgREST answers list queries for both tables.
func fakePostgREST(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/resources"):
			_, _ = w.Write([]byte(`[
				{"id":"0b8f5a8e-4c1e-4a57-9f7d-0f3c2d1e6a01","title":"Graph Algorithms","description":"BFS and DFS","category":"DSA","type":"Guide","featured":true,"created_at":"2024-03-01T00:00:00Z"},
				{"id":"0b8f5a8e-4c1e-4a57-9f7d-0f3c2d1e6a02","title":"REST APIs","description":"HTTP verbs","category":"Web Dev","type":"Course","featured":false,"created_at":"2024-02-01T00:00:00Z"}
			]`))
		case strings.HasSuffix(r.URL.Path, "/roadmaps"):
			_, _ = w.Write([]byte(`[
				{"id":"0b8f5a8e-4c1e-4a57-9f7d-0f3c2d1e6a03","title":"Frontend","description":"","difficulty":"beginner","featured":true,"created_at":"2024-03-01T00:00:00Z"}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setEnv(t *testing.T, url string) {
	t.Setenv("SOURCE_BACKEND", "supabase")
	t.Setenv("SUPABASE_URL", url)
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("ENV", "test")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := Execute()
	return buf.String(), err
}

func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	out, err := run(t)
	assert.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "resources")
	assert.Contains(t, out, "roadmaps")
}

func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	_, err := run(t, "--unknown-flag", "value")
	assert.Error(t, err)
}

func TestResourcesCommand_Filters(t *testing.T) {
	setEnv(t, fakePostgREST(t).URL)

	out, err := run(t, "resources", "--category", "DSA", "--search", "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "Graph Algorithms")
	assert.NotContains(t, out, "REST APIs")
	assert.Contains(t, out, "(1 of 2)")
}

func TestResourcesCommand_NoMatches(t *testing.T) {
	setEnv(t, fakePostgREST(t).URL)

	out, err := run(t, "resources", "--category", "All", "--search", "kubernetes")
	require.NoError(t, err)
	assert.Contains(t, out, "No resources found matching your criteria.")
}

func TestResourcesCommand_UnknownCategory(t *testing.T) {
	setEnv(t, fakePostgREST(t).URL)

	_, err := run(t, "resources", "--category", "Cooking", "--search", "")
	assert.ErrorContains(t, err, "Unknown category")
}

func TestRoadmapsCommand(t *testing.T) {
	setEnv(t, fakePostgREST(t).URL)

	out, err := run(t, "roadmaps")
	require.NoError(t, err)
	assert.Contains(t, out, "Featured Roadmaps")
	assert.Contains(t, out, "Frontend")
	assert.Contains(t, out, "Duration: Self-paced")
}

func TestCacheFlush_RequiresRedis(t *testing.T) {
	setEnv(t, fakePostgREST(t).URL)

	_, err := run(t, "cache", "flush")
	assert.ErrorContains(t, err, "Snapshot cache is not available")
}
