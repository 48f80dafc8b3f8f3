package schema

type Stats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalGroups        int64 `json:"total_groups"`
	TotalSubmissions   int64 `json:"total_submissions"`
	TotalNotifications int64 `json:"total_notifications"`
	ActiveGroups       int64 `json:"active_groups"`
}
