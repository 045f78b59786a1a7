package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPosts() []Post {
	return []Post{
		{ID: "1", ProjectID: "p1", ProjectName: "TechStartup X", Content: "Just shipped our latest feature!", Platform: PlatformX, Status: PostStatusPending, CreatedAt: "2025-11-15T10:00:00Z", Likes: 42, Shares: 8},
		{ID: "2", ProjectID: "p2", ProjectName: "CryptoDAO", Content: "The future of decentralized governance", Platform: PlatformFarcaster, Status: PostStatusApproved, CreatedAt: "2025-11-15T08:00:00Z", Likes: 156, Shares: 23},
		{ID: "3", ProjectID: "p1", ProjectName: "TechStartup X", Content: "Building in public has its challenges", Platform: PlatformX, Status: PostStatusRejected, CreatedAt: "2025-11-14T22:00:00Z", Likes: 67, Shares: 12},
	}
}

func testProjects() []Project {
	return []Project{
		{ID: "a", Name: "TechStartup X", Platform: PlatformX, URL: "https://x.com/techstartupx", Tags: []string{"SaaS", "Startup"}, Status: ProjectStatusActive, CreatedAt: "2025-10-01T00:00:00Z", LastScraped: "2025-11-15T10:00:00Z", TotalInsights: 12},
		{ID: "b", Name: "CryptoDAO", Platform: PlatformFarcaster, URL: "https://warpcast.com/cryptodao", Tags: []string{"DAO", "Governance"}, Status: ProjectStatusPaused, CreatedAt: "2025-09-15T00:00:00Z", LastScraped: "2025-11-14T10:00:00Z", TotalInsights: 34},
		{ID: "c", Name: "NFT Collection", Platform: PlatformX, URL: "https://x.com/nftcollection", Tags: []string{"NFT", "DigitalArt"}, Status: ProjectStatusActive, CreatedAt: "2025-11-01T00:00:00Z", LastScraped: "2025-11-13T10:00:00Z", TotalInsights: 5},
	}
}

func TestFilterPosts(t *testing.T) {
	posts := testPosts()

	tests := []struct {
		name    string
		filter  PostFilter
		wantIDs []string
	}{
		{"empty filter returns all", PostFilter{}, []string{"1", "2", "3"}},
		{"all sentinel returns all", PostFilter{ProjectID: "all", Status: "all"}, []string{"1", "2", "3"}},
		{"by status", PostFilter{Status: "approved"}, []string{"2"}},
		{"by project", PostFilter{ProjectID: "p1"}, []string{"1", "3"}},
		{"by platform", PostFilter{Platform: "farcaster"}, []string{"2"}},
		{"conjunctive project and status", PostFilter{ProjectID: "p1", Status: "rejected"}, []string{"3"}},
		{"conjunctive with no match", PostFilter{ProjectID: "p2", Status: "rejected"}, []string{}},
		{"search matches content", PostFilter{Search: "SHIPPED"}, []string{"1"}},
		{"search matches project name", PostFilter{Search: "cryptodao"}, []string{"2"}},
		{"unknown status matches nothing", PostFilter{Status: "draft"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPosts(posts, tt.filter)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterPostsAddingPredicateNeverGrowsResult(t *testing.T) {
	posts := testPosts()
	base := FilterPosts(posts, PostFilter{ProjectID: "p1"})
	narrowed := FilterPosts(posts, PostFilter{ProjectID: "p1", Status: "pending"})
	assert.LessOrEqual(t, len(narrowed), len(base))
}

func TestFilterProjects(t *testing.T) {
	projects := testProjects()

	tests := []struct {
		name    string
		filter  ProjectFilter
		wantIDs []string
	}{
		{"empty filter returns all", ProjectFilter{}, []string{"a", "b", "c"}},
		{"by status", ProjectFilter{Status: "paused"}, []string{"b"}},
		{"by platform", ProjectFilter{Platform: "x"}, []string{"a", "c"}},
		{"search matches name", ProjectFilter{Search: "crypto"}, []string{"b"}},
		{"search matches url", ProjectFilter{Search: "warpcast"}, []string{"b"}},
		{"search matches tag", ProjectFilter{Search: "digitalart"}, []string{"c"}},
		{"search with surrounding space", ProjectFilter{Search: "  nft  "}, []string{"c"}},
		{"search and status conjunctive", ProjectFilter{Search: "x.com", Status: "paused"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.filter)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	posts := testPosts()
	FilterPosts(posts, PostFilter{Status: "approved"})

	assert.Equal(t, testPosts(), posts)
}

func TestPostFilterIsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter PostFilter
		want   bool
	}{
		{"zero value", PostFilter{}, true},
		{"all sentinels", PostFilter{ProjectID: "all", Status: "all", Platform: "all"}, true},
		{"status set", PostFilter{Status: "pending"}, false},
		{"search set", PostFilter{Search: "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.IsEmpty())
		})
	}
}
