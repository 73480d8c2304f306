package store

import (
	"time"

	"github.com/cryptopilot/droptrack/internal/model"
)

// seedSet holds the built-in demo data written on first run and served when
// stored data is unreadable.
type seedSet struct {
	airdrops []model.Airdrop
	testnets []model.Testnet
	tools    []model.Tool
	videos   []model.Video
	rankings []model.AirdropRanking
}

// seedData builds the demo collections. Creation timestamps are offsets from
// the supplied time so the records always look recently created. All records
// carry the shared seed owner and are visible to every user.
func seedData(now time.Time) seedSet {
	daysAgo := func(d int) int64 {
		return model.Millis(now.Add(-time.Duration(d) * 24 * time.Hour))
	}

	return seedSet{
		airdrops: []model.Airdrop{
			{
				ID:       "seed-airdrop-1",
				UserID:   model.SeedUserID,
				Title:    "Arbitrum Airdrop",
				Category: "Layer 1 & Testnet Mainnet",
				Description: "Complete tasks on Arbitrum network to qualify " +
					"for ARB token airdrop.",
				Links: []model.AirdropLink{
					{ID: "1", Name: "Official Website", URL: "https://arbitrum.io/"},
					{ID: "2", Name: "Bridge ETH to Arbitrum", URL: "https://bridge.arbitrum.io/"},
				},
				FundingAmount:  "$675M",
				Rewards:        "Up to 10,000 ARB tokens",
				TimeCommitment: "2 weeks",
				WorkRequired:   "Bridge assets, swap tokens, provide liquidity",
				IsPinned:       true,
				CreatedAt:      daysAgo(2),
			},
			{
				ID:       "seed-airdrop-2",
				UserID:   model.SeedUserID,
				Title:    "LayerZero Quest",
				Category: "Social Airdrops",
				Description: "Complete social media tasks and on-chain " +
					"activities for potential LayerZero airdrop.",
				Links: []model.AirdropLink{
					{ID: "1", Name: "Galxe Campaign", URL: "https://galxe.com"},
					{ID: "2", Name: "LayerZero Docs", URL: "https://docs.layerzero.network/"},
				},
				FundingAmount:  "Unknown",
				Rewards:        "Estimated 500-2000 ZRO tokens",
				TimeCommitment: "1-2 hours",
				WorkRequired:   "Follow Twitter, join Discord, complete bridge transactions",
				CreatedAt:      daysAgo(1),
			},
		},
		testnets: []model.Testnet{
			{
				ID:          "seed-testnet-1",
				UserID:      model.SeedUserID,
				Title:       "Taiko Testnet",
				Category:    "Galxe Testnet",
				Description: "Participate in Taiko L2 rollup testnet activities.",
				Progress:    67,
				Rewards:     "Potential TAIKO token airdrop",
				Tasks: []model.TestnetTask{
					{ID: "1", Name: "Bridge ETH to Taiko", URL: "https://bridge.test.taiko.xyz", IsCompleted: true},
					{ID: "2", Name: "Swap tokens on TaikoSwap", URL: "https://swap.test.taiko.xyz", IsCompleted: true},
					{ID: "3", Name: "Deploy a smart contract", URL: "https://docs.taiko.xyz"},
				},
				IsPinned:  true,
				CreatedAt: daysAgo(3),
			},
			{
				ID:       "seed-testnet-2",
				UserID:   model.SeedUserID,
				Title:    "Linea Voyage",
				Category: "Mining Sessions",
				Description: "Complete tasks on Linea network to earn points " +
					"and qualify for potential airdrop.",
				Progress: 25,
				Rewards:  "Estimated 300-1000 LINEA tokens",
				Tasks: []model.TestnetTask{
					{ID: "1", Name: "Bridge to Linea", URL: "https://bridge.linea.build/", IsCompleted: true},
					{ID: "2", Name: "Mint Linea Voyage NFT", URL: "https://voyage.linea.build/"},
					{ID: "3", Name: "Complete week 1 tasks", URL: "https://galxe.com/linea"},
					{ID: "4", Name: "Complete week 2 tasks", URL: "https://galxe.com/linea"},
				},
				CreatedAt: daysAgo(2),
			},
		},
		tools: []model.Tool{
			{
				ID:          "seed-tool-1",
				UserID:      model.SeedUserID,
				Title:       "DeBank",
				Category:    "Wallet Connect",
				Description: "Track your DeFi portfolio across multiple chains.",
				URL:         "https://debank.com/",
				CreatedAt:   daysAgo(5),
			},
			{
				ID:          "seed-tool-2",
				UserID:      model.SeedUserID,
				Title:       "Etherscan",
				Category:    "Gas Fee Calculator",
				Description: "Explore and analyze Ethereum blockchain.",
				URL:         "https://etherscan.io/",
				CreatedAt:   daysAgo(3),
			},
		},
		videos: []model.Video{
			{
				ID:     "seed-video-1",
				UserID: model.SeedUserID,
				Title:  "How to Qualify for Arbitrum Airdrop",
				Description: "A step-by-step guide to maximize your chances " +
					"for the Arbitrum airdrop.",
				ThumbnailURL: "https://i.ytimg.com/vi/gxP33axk8yY/maxresdefault.jpg",
				VideoURL:     "https://www.youtube.com/watch?v=gxP33axk8yY",
				Category:     "Crypto Series",
				IsPinned:     true,
				CreatedAt:    daysAgo(4),
			},
			{
				ID:     "seed-video-2",
				UserID: model.SeedUserID,
				Title:  "ZKSync Era Testnet Tutorial",
				Description: "Complete guide to participate in ZKSync Era " +
					"testnet and earn potential rewards.",
				ThumbnailURL: "https://i.ytimg.com/vi/Z3-XgvG_z9U/maxresdefault.jpg",
				VideoURL:     "https://www.youtube.com/watch?v=Z3-XgvG_z9U",
				Category:     "Top Testnets",
				CreatedAt:    daysAgo(2),
			},
		},
		// The leaderboard starts empty; entries are admin-curated.
		rankings: []model.AirdropRanking{},
	}
}
