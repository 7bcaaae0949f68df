package types

const DefaultPageSize = 20

type PageRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize 填默认值并算偏移量
func (r *PageRequest) Normalize() (limit, offset int) {
	if r.PageSize <= 0 || r.PageSize > 100 {
		r.PageSize = DefaultPageSize
	}
	if r.Page <= 0 {
		r.Page = 1
	}
	return r.PageSize, (r.Page - 1) * r.PageSize
}
