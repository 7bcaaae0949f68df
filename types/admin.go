package types

// AdminStats 管理端统计，收入 = Σ(订阅价 × 订阅数)
type AdminStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	Subscribers  int64   `json:"subscribers"`
	Posts        int64   `json:"posts"`
	Messages     int64   `json:"messages"`
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

// ReconcileResult 计数校准结果，返回覆盖后的真计数
type ReconcileResult struct {
	CreatorID       int64 `json:"creator_id"`
	SubscriberCount int64 `json:"subscriber_count"`
	PostCount       int64 `json:"post_count"`
}
