// Package model defines the domain models for Droptrack.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Storage keys. Each collection is serialized as a single JSON array (or
// scalar, for the refresh timestamp) under its fixed key.
const (
	KeyAirdrops    = "droptrack:airdrops"
	KeyTestnets    = "droptrack:testnets"
	KeyTools       = "droptrack:tools"
	KeyVideos      = "droptrack:videos"
	KeyRankings    = "droptrack:rankings"
	KeyUsers       = "droptrack:users"
	KeySession     = "droptrack:session"
	KeyLastRefresh = "droptrack:last_refresh"

	KeyAirdropCategories = "droptrack:airdrop_categories"
	KeyTestnetCategories = "droptrack:testnet_categories"
	KeyToolCategories    = "droptrack:tool_categories"
	KeyVideoCategories   = "droptrack:video_categories"
)

// SeedUserID marks shared seed data visible to all users.
const SeedUserID = "demo"

// List caps.
const (
	// MaxAirdropLinks is the maximum number of links on a single airdrop.
	MaxAirdropLinks = 100
	// MaxTestnetTasks is the maximum number of tasks on a single testnet.
	MaxTestnetTasks = 50
)

// NewID generates a new opaque entity ID. UUIDv7 keeps IDs unique and
// roughly time-ordered.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source is broken; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}

// Millis converts a time to epoch milliseconds, the creation-timestamp
// representation used throughout the stored data.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
