package domain

var (
	MessageSuccessGetStats = "statistics retrieved successfully"
	MessageFailedGetStats  = "failed to retrieve statistics"
)

type StatsResponse struct {
	TotalBrands        int64 `json:"total_brands"`
	PendingSubmissions int64 `json:"pending_submissions"`
	TotalUsers         int64 `json:"total_users"`
}
