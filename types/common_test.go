package types

import "testing"

func TestPageRequestNormalize(t *testing.T) {
	cases := []struct {
		name       string
		req        PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"默认值", PageRequest{}, DefaultPageSize, 0},
		{"第二页", PageRequest{Page: 2, PageSize: 10}, 10, 10},
		{"页大小超限回退默认", PageRequest{Page: 1, PageSize: 500}, DefaultPageSize, 0},
		{"负数页码按第一页", PageRequest{Page: -3, PageSize: 10}, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := tc.req.Normalize()
			if limit != tc.wantLimit || offset != tc.wantOffset {
				t.Fatalf("got (%d,%d), want (%d,%d)", limit, offset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
