package service

import "testing"

func TestValidLikeTarget(t *testing.T) {
	valid := []string{"video", "comment", "tweet"}
	for _, target := range valid {
		if !ValidLikeTarget(target) {
			t.Errorf("ValidLikeTarget(%q) = false, want true", target)
		}
	}
	invalid := []string{"", "Video", "playlist", "user", "videos"}
	for _, target := range invalid {
		if ValidLikeTarget(target) {
			t.Errorf("ValidLikeTarget(%q) = true, want false", target)
		}
	}
}
