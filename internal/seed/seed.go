// Package seed provides demo fixtures for a fresh beadapp installation.
package seed

import (
	"fmt"
	"time"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/storage"
)

// Projects returns the demo project fixtures.
func Projects() []domain.Project {
	return []domain.Project{
		{
			ID:              "proj-1",
			Name:            "TechStartup Weekly",
			Platform:        domain.PlatformX,
			URL:             "https://x.com/techstartup_weekly",
			Tags:            []string{"tech", "startup", "innovation"},
			Status:          domain.ProjectStatusActive,
			ScrapingEnabled: true,
			CreatedAt:       "2025-11-10T10:00:00Z",
			LastScraped:     "2025-11-15T02:45:00Z",
			TotalInsights:   127,
		},
		{
			ID:              "proj-2",
			Name:            "Crypto Insights Hub",
			Platform:        domain.PlatformFarcaster,
			URL:             "https://warpcast.com/crypto-insights",
			Tags:            []string{"crypto", "blockchain", "defi"},
			Status:          domain.ProjectStatusActive,
			ScrapingEnabled: true,
			CreatedAt:       "2025-11-08T14:30:00Z",
			LastScraped:     "2025-11-15T01:30:00Z",
			TotalInsights:   89,
		},
		{
			ID:              "proj-3",
			Name:            "AI Research Daily",
			Platform:        domain.PlatformX,
			URL:             "https://x.com/ai_research_daily",
			Tags:            []string{"ai", "research", "machine-learning"},
			Status:          domain.ProjectStatusPaused,
			ScrapingEnabled: false,
			CreatedAt:       "2025-11-05T09:15:00Z",
			LastScraped:     "2025-11-14T18:20:00Z",
			TotalInsights:   203,
		},
		{
			ID:              "proj-4",
			Name:            "Web3 Community",
			Platform:        domain.PlatformFarcaster,
			URL:             "https://warpcast.com/web3-community",
			Tags:            []string{"web3", "community", "nft"},
			Status:          domain.ProjectStatusError,
			ScrapingEnabled: true,
			CreatedAt:       "2025-11-12T16:45:00Z",
			LastScraped:     "2025-11-14T12:00:00Z",
			TotalInsights:   45,
		},
		{
			ID:              "proj-5",
			Name:            "Design Inspiration",
			Platform:        domain.PlatformX,
			URL:             "https://x.com/design_inspire",
			Tags:            []string{"design", "ui", "creativity"},
			Status:          domain.ProjectStatusActive,
			ScrapingEnabled: true,
			CreatedAt:       "2025-11-07T11:20:00Z",
			LastScraped:     "2025-11-15T03:00:00Z",
			TotalInsights:   156,
		},
		{
			ID:              "proj-6",
			Name:            "Marketing Trends",
			Platform:        domain.PlatformFarcaster,
			URL:             "https://warpcast.com/marketing-trends",
			Tags:            []string{"marketing", "trends", "social-media"},
			Status:          domain.ProjectStatusIdle,
			ScrapingEnabled: false,
			CreatedAt:       "2025-11-09T13:10:00Z",
			LastScraped:     "2025-11-13T20:15:00Z",
			TotalInsights:   78,
		},
	}
}

// Posts returns the demo post fixtures with creation times spread over
// the hours before now.
func Posts(now time.Time) []domain.Post {
	at := func(hoursAgo int) string {
		return now.UTC().Add(-time.Duration(hoursAgo) * time.Hour).Format(time.RFC3339)
	}
	return []domain.Post{
		{
			ID:          "post-1",
			ProjectID:   "proj-1",
			ProjectName: "TechStartup Weekly",
			Content:     "🚀 Just shipped our latest feature! The community response has been incredible. Sometimes the best innovations come from listening to your users. What's your take on user-driven development? #TechStartup #Innovation",
			Platform:    domain.PlatformX,
			Status:      domain.PostStatusPending,
			CreatedAt:   at(2),
			Likes:       42,
			Shares:      8,
		},
		{
			ID:          "post-2",
			ProjectID:   "proj-2",
			ProjectName: "Crypto Insights Hub",
			Content:     "💎 The future of decentralized governance is here! Our latest proposal just passed with 89% community approval. Democracy in action, powered by blockchain. Who says crypto can't be inclusive? 🗳️ #DAO #Crypto",
			Platform:    domain.PlatformFarcaster,
			Status:      domain.PostStatusApproved,
			CreatedAt:   at(4),
			Likes:       156,
			Shares:      23,
		},
		{
			ID:          "post-3",
			ProjectID:   "proj-4",
			ProjectName: "Web3 Community",
			Content:     "🎨 Art meets technology in ways we never imagined. Our latest NFT drop sold out in 3 minutes! The intersection of creativity and blockchain continues to amaze us. What's your favorite NFT project? #NFT #DigitalArt",
			Platform:    domain.PlatformFarcaster,
			Status:      domain.PostStatusApproved,
			CreatedAt:   at(6),
			Likes:       89,
			Shares:      15,
		},
		{
			ID:          "post-4",
			ProjectID:   "proj-2",
			ProjectName: "Crypto Insights Hub",
			Content:     "⚡ DeFi just got faster! Our new protocol reduces transaction costs by 70% while maintaining security. Sometimes the best solutions are the simplest ones. Ready to experience lightning-fast DeFi? #DeFi #Blockchain",
			Platform:    domain.PlatformFarcaster,
			Status:      domain.PostStatusRejected,
			CreatedAt:   at(8),
			Likes:       234,
			Shares:      45,
		},
		{
			ID:          "post-5",
			ProjectID:   "proj-1",
			ProjectName: "TechStartup Weekly",
			Content:     "🌟 Building in public has its challenges, but the community support makes it all worth it. Every bug report, every feature request, every word of encouragement - it all matters. Thank you for being part of this journey! 🙏",
			Platform:    domain.PlatformX,
			Status:      domain.PostStatusPending,
			CreatedAt:   at(12),
			Likes:       67,
			Shares:      12,
		},
	}
}

// Apply writes the demo fixtures to the store, replacing any existing
// collections.
func Apply(store storage.Store, now time.Time) error {
	if err := store.SaveProjects(Projects()); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := store.SavePosts(Posts(now)); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	return nil
}
