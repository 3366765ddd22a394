package dtos

import "github.com/justsurfingit/maya-pricing/internal/models"

// BPOCUsersResponse is the body of GET /bpoc-users. CacheAge is in seconds.
type BPOCUsersResponse struct {
	Success  bool               `json:"success"`
	Data     []models.Candidate `json:"data"`
	Total    int                `json:"total"`
	Cached   bool               `json:"cached"`
	CacheAge int                `json:"cacheAge,omitempty"`
	Stale    bool               `json:"stale,omitempty"`
	Error    string             `json:"error,omitempty"`
}
