package db

import "testing"

func TestVideoSortField(t *testing.T) {
	t.Run("Whitelisted", func(t *testing.T) {
		for _, sortBy := range []string{"created_at", "visit_count", "like_count", "title"} {
			if _, ok := VideoSortField(sortBy); !ok {
				t.Errorf("VideoSortField(%q) rejected a whitelisted field", sortBy)
			}
		}
	})

	t.Run("RejectsInjection", func(t *testing.T) {
		// order by是拼接进SQL的 白名单之外一律拒绝
		for _, sortBy := range []string{"", "id; drop table videos", "created_at desc", "password"} {
			if field, ok := VideoSortField(sortBy); ok {
				t.Errorf("VideoSortField(%q) = %q, want rejection", sortBy, field)
			}
		}
	})
}
