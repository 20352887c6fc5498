package utils

import "testing"

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"jpeg within limit", "image", "image/jpeg", 1 << 20, false},
		{"png at the limit", "image", "image/png", 2 * 1024 * 1024, false},
		{"image over 2MB", "image", "image/jpeg", 2*1024*1024 + 1, true},
		{"image with pdf type", "image", "application/pdf", 1 << 20, true},
		{"mp4 within limit", "video", "video/mp4", 50 * 1024 * 1024, false},
		{"video over 100MB", "video", "video/webm", 101 * 1024 * 1024, true},
		{"pdf within limit", "document", "application/pdf", 5 * 1024 * 1024, false},
		{"pdf over 10MB", "document", "application/pdf", 11 * 1024 * 1024, true},
		{"document with image type", "document", "image/png", 1 << 20, true},
		{"unknown category", "audio", "audio/mpeg", 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.category, tt.contentType, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUpload(%s, %s, %d) error = %v, wantErr %v",
					tt.category, tt.contentType, tt.size, err, tt.wantErr)
			}
		})
	}
}
