package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/mutation"
	"github.com/ch1m3z13/beadapp/internal/seed"
	"github.com/ch1m3z13/beadapp/internal/storage"
)

// setupTestEnv points state and config at temp dirs and clears package
// singletons so each test starts from an empty store.
func setupTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BEADAPP_STATE_DIR", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	storage.Reset()
	config.Reset()
	t.Cleanup(func() {
		storage.Reset()
		config.Reset()
	})
}

func TestSeedCommandPopulatesStore(t *testing.T) {
	setupTestEnv(t)

	if err := runSeed(seedCmd, nil); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()

	projects, err := repos.projects.List()
	if err != nil {
		t.Fatalf("List projects failed: %v", err)
	}
	if len(projects) != len(seed.Projects()) {
		t.Errorf("Expected %d projects, got %d", len(seed.Projects()), len(projects))
	}
	posts, err := repos.posts.List()
	if err != nil {
		t.Fatalf("List posts failed: %v", err)
	}
	if len(posts) == 0 {
		t.Error("Expected seeded posts, got none")
	}
}

func TestPostsCommandListsSeededPosts(t *testing.T) {
	setupTestEnv(t)
	if err := runSeed(seedCmd, nil); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	postsProject, postsStatus, postsPlatform, postsSearch, postsSort = "", "", "", "", "newest"
	var buf bytes.Buffer
	postsCmd.SetOut(&buf)
	defer postsCmd.SetOut(nil)

	if err := runPosts(postsCmd, nil); err != nil {
		t.Fatalf("runPosts failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "PROJECT") {
		t.Errorf("Expected table header in output, got %q", out)
	}
	if !strings.Contains(out, "Crypto Insights") {
		t.Errorf("Expected seeded project name in output, got %q", out)
	}
}

func TestPostsCommandStatusFilter(t *testing.T) {
	setupTestEnv(t)
	if err := runSeed(seedCmd, nil); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	postsProject, postsPlatform, postsSearch, postsSort = "", "", "", "newest"
	postsStatus = "rejected"
	defer func() { postsStatus = "" }()

	var buf bytes.Buffer
	postsCmd.SetOut(&buf)
	defer postsCmd.SetOut(nil)

	if err := runPosts(postsCmd, nil); err != nil {
		t.Fatalf("runPosts failed: %v", err)
	}
	// Skip the header and separator lines.
	for _, line := range strings.Split(buf.String(), "\n")[2:] {
		if line == "" {
			continue
		}
		if !strings.Contains(line, "rejected") {
			t.Errorf("Expected only rejected posts, got line %q", line)
		}
	}
}

func TestPostsCommandRejectsBadSortKey(t *testing.T) {
	setupTestEnv(t)
	postsSort = "upside-down"
	defer func() { postsSort = "newest" }()

	if err := runPosts(postsCmd, nil); err == nil {
		t.Error("Expected error for invalid sort key")
	}
}

func TestProjectsCommandPlatformFilter(t *testing.T) {
	setupTestEnv(t)
	if err := runSeed(seedCmd, nil); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	projectsStatus, projectsSearch, projectsSort = "", "", "recent"
	projectsPlatform = "farcaster"
	defer func() { projectsPlatform = "" }()

	var buf bytes.Buffer
	projectsCmd.SetOut(&buf)
	defer projectsCmd.SetOut(nil)

	if err := runProjects(projectsCmd, nil); err != nil {
		t.Fatalf("runProjects failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "TechStartup Weekly") {
		t.Errorf("Expected x-platform project filtered out, got %q", out)
	}
	if !strings.Contains(out, "Crypto Insights Hub") {
		t.Errorf("Expected farcaster project in output, got %q", out)
	}
}

func TestAddCommandPersistsProject(t *testing.T) {
	setupTestEnv(t)

	addName = "My Feed"
	addPlatform = "x"
	addURL = "https://x.com/someone/status/12345"
	addTags = "go, tooling"
	addDescription = "test project"
	addScrape = true
	defer func() {
		addName, addPlatform, addURL, addTags, addDescription = "", "", "", "", ""
		addScrape = false
	}()

	if err := runAdd(addCmd, nil); err != nil {
		t.Fatalf("runAdd failed: %v", err)
	}

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()

	projects, err := repos.projects.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	p := projects[0]
	if p.Name != "My Feed" {
		t.Errorf("Expected name 'My Feed', got %q", p.Name)
	}
	if p.ID == "" {
		t.Error("Expected generated project ID")
	}
	if len(p.Tags) != 2 || p.Tags[0] != "go" || p.Tags[1] != "tooling" {
		t.Errorf("Expected tags [go tooling], got %v", p.Tags)
	}
	if !p.ScrapingEnabled {
		t.Error("Expected scraping enabled")
	}
	if p.Status != domain.ProjectStatusActive {
		t.Errorf("Expected active status, got %q", p.Status)
	}
}

func TestAddCommandRejectsInvalidURL(t *testing.T) {
	setupTestEnv(t)

	addName = "Bad URL"
	addPlatform = "x"
	addURL = "https://example.com/not-a-post"
	defer func() { addName, addPlatform, addURL = "", "", "" }()

	if err := runAdd(addCmd, nil); err != nil {
		t.Fatalf("runAdd returned unexpected error: %v", err)
	}

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()

	projects, err := repos.projects.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected no projects written, got %d", len(projects))
	}
}

func TestAddCommandRequiresURL(t *testing.T) {
	setupTestEnv(t)

	addName = "No URL"
	addPlatform = "x"
	defer func() { addName, addPlatform = "", "" }()

	if err := runAdd(addCmd, nil); err != nil {
		t.Fatalf("runAdd returned unexpected error: %v", err)
	}

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()

	projects, err := repos.projects.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected no projects written, got %d", len(projects))
	}
}

func TestAddCommandScrapeOffStoresIdle(t *testing.T) {
	setupTestEnv(t)

	addName = "Later Feed"
	addPlatform = "x"
	addURL = "https://x.com/someone/status/67890"
	defer func() { addName, addPlatform, addURL = "", "", "" }()

	if err := runAdd(addCmd, nil); err != nil {
		t.Fatalf("runAdd failed: %v", err)
	}

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()

	projects, err := repos.projects.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	if projects[0].Status != domain.ProjectStatusIdle {
		t.Errorf("Expected idle status with scraping off, got %q", projects[0].Status)
	}
	if projects[0].ScrapingEnabled {
		t.Error("Expected scraping disabled")
	}
}

func TestLikeCommandIncrementsLikes(t *testing.T) {
	setupTestEnv(t)
	if err := runSeed(seedCmd, nil); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	posts, err := repos.posts.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	target := posts[0]
	repos.Close()

	run := mutateRunE(mutation.KindLike)
	if err := run(likeCmd, []string{target.ID}); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	repos, err = openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()
	updated, err := repos.posts.GetByID(target.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Likes != target.Likes+1 {
		t.Errorf("Expected %d likes, got %d", target.Likes+1, updated.Likes)
	}
}

func TestApproveCommandSetsStatus(t *testing.T) {
	setupTestEnv(t)
	if err := runSeed(seedCmd, nil); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	posts, err := repos.posts.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	target := posts[0]
	repos.Close()

	run := mutateRunE(mutation.KindApprove)
	if err := run(approveCmd, []string{target.ID}); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	repos, err = openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()
	updated, err := repos.posts.GetByID(target.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Status != domain.PostStatusApproved {
		t.Errorf("Expected approved status, got %q", updated.Status)
	}
}

func TestMutateMissingPostIsSilent(t *testing.T) {
	setupTestEnv(t)
	if err := runSeed(seedCmd, nil); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}

	run := mutateRunE(mutation.KindShare)
	if err := run(shareCmd, []string{"no-such-post"}); err != nil {
		t.Errorf("Expected silent no-op for missing post, got %v", err)
	}
}

func TestSeedIfEmptyOnlySeedsOnce(t *testing.T) {
	setupTestEnv(t)

	repos, err := openRepositories()
	if err != nil {
		t.Fatalf("openRepositories failed: %v", err)
	}
	defer repos.Close()

	if err := seedIfEmpty(repos); err != nil {
		t.Fatalf("seedIfEmpty failed: %v", err)
	}
	projects, err := repos.projects.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := len(projects)
	if want == 0 {
		t.Fatal("Expected first seedIfEmpty to populate the store")
	}

	if err := seedIfEmpty(repos); err != nil {
		t.Fatalf("second seedIfEmpty failed: %v", err)
	}
	projects, err = repos.projects.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != want {
		t.Errorf("Expected store untouched on second call, got %d projects", len(projects))
	}
}

func TestSettingsCommandShowsDefaults(t *testing.T) {
	setupTestEnv(t)

	settingsReset = false
	var buf bytes.Buffer
	settingsCmd.SetOut(&buf)
	defer settingsCmd.SetOut(nil)

	if err := runSettings(settingsCmd, nil); err != nil {
		t.Fatalf("runSettings failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"defaultView": "dashboard"`) {
		t.Errorf("Expected default view in output, got %q", out)
	}
}

func TestSettingsReset(t *testing.T) {
	setupTestEnv(t)

	settingsReset = true
	defer func() { settingsReset = false }()

	if err := runSettings(settingsCmd, nil); err != nil {
		t.Fatalf("runSettings --reset failed: %v", err)
	}
}

func TestVersionCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)
	if !strings.Contains(buf.String(), "beadapp v") {
		t.Errorf("Expected version banner, got %q", buf.String())
	}
}
