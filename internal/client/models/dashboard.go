package models

// MonthlyRatings counts submitted ratings per star value for one month.
type MonthlyRatings struct {
	Month string `json:"month"`
	R1    int    `json:"r1"`
	R2    int    `json:"r2"`
	R3    int    `json:"r3"`
	R4    int    `json:"r4"`
	R5    int    `json:"r5"`
}

// Total sums all star buckets.
func (m MonthlyRatings) Total() int {
	return m.R1 + m.R2 + m.R3 + m.R4 + m.R5
}

// AdminStats is the resultData of GET /admin/dashboard-stat.
type AdminStats struct {
	TotalUsers     int              `json:"totalUsers"`
	TotalRatings   int              `json:"totalRatings"`
	TotalStores    int              `json:"totalStores"`
	MonthlyRatings []MonthlyRatings `json:"monthlyRatings"`
}

// OwnerStore is one element of GET /owner/dashboard-stat.
type OwnerStore struct {
	StoreName    string    `json:"storeName"`
	StoreEmail   string    `json:"storeEmail"`
	StoreAddress string    `json:"storeAddress"`
	AvgRating    float64   `json:"avgRating"`
	Users        []RawUser `json:"users"`
}

// RawUser keeps a rater object undecoded so it can become a view record.
type RawUser = map[string]any
