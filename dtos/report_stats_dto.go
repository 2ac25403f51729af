package dtos

// ApplicationPassCount feeds the top-applications chart: how many test
// cases passed per application across all reports.
type ApplicationPassCount struct {
	ApplicationName string `json:"applicationName"`
	PassedCount     int    `json:"passedCount"`
}
