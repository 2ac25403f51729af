package dtos

// DashboardStats is the aggregated counter block of the overview dashboard.
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalClients      int64 `json:"totalClients"`
	TotalApplications int64 `json:"totalApplications"`
	TotalTestPlans    int64 `json:"totalTestPlans"`

	TotalDefects  int64 `json:"totalDefects"`
	OpenDefects   int64 `json:"openDefects"`
	ClosedDefects int64 `json:"closedDefects"`

	OpenVulnerabilities   int64 `json:"openVulnerabilities"`
	ClosedVulnerabilities int64 `json:"closedVulnerabilities"`

	DefectsBySeverity map[string]int64 `json:"defectsBySeverity"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// MonthlyCount buckets findings by yyyy-mm month for the trend chart.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}
