package utils

import (
	"fmt"
)

// UploadRule bounds one upload category by size and MIME type.
type UploadRule struct {
	MaxBytes     int64
	AllowedTypes []string
}

var uploadRules = map[string]UploadRule{
	"image": {
		MaxBytes:     2 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif"},
	},
	"video": {
		MaxBytes:     100 * 1024 * 1024,
		AllowedTypes: []string{"video/mp4", "video/webm", "video/quicktime"},
	},
	"document": {
		MaxBytes:     10 * 1024 * 1024,
		AllowedTypes: []string{"application/pdf"},
	},
}

// ValidateUpload checks a file against its category's rule before anything
// is sent to object storage.
func ValidateUpload(category, contentType string, size int64) error {
	rule, ok := uploadRules[category]
	if !ok {
		return fmt.Errorf("unknown upload category: %s", category)
	}

	if size > rule.MaxBytes {
		return fmt.Errorf("file exceeds the %dMB limit for %s uploads", rule.MaxBytes/(1024*1024), category)
	}

	for _, allowed := range rule.AllowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("file type %s is not allowed for %s uploads", contentType, category)
}
