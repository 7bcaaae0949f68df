package types

type LibraryResponse struct {
	SavedPosts    []*PostView `json:"saved_posts"`
	SavedTotal    int64       `json:"saved_total"`
	Subscriptions []*Creator  `json:"subscriptions"`
}
