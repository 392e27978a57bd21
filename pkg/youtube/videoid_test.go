package youtube

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch", "https://www.youtube.com/watch?v=abc123", "abc123"},
		{"watch with params", "https://www.youtube.com/watch?v=abc123&t=42s", "abc123"},
		{"watch with fragment", "https://youtube.com/watch?v=abc123#comments", "abc123"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?si=share", "dQw4w9WgXcQ"},
		{"shorts", "https://youtube.com/shorts/xyz_-98", "xyz_-98"},
		{"embed", "https://www.youtube.com/embed/emb3d?autoplay=1", "emb3d"},
		{"mobile", "https://m.youtube.com/watch?v=mob1le", "mob1le"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if err != nil {
				t.Fatalf("ExtractVideoID(%q) error: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractVideoID_Invalid(t *testing.T) {
	for _, url := range []string{
		"https://www.youtube.com/",
		"https://vimeo.com/12345",
		"https://www.youtube.com/watch?v=",
		"",
	} {
		if id, err := ExtractVideoID(url); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("ExtractVideoID(%q) = %q, %v; want ErrInvalidURL", url, id, err)
		}
	}
}
