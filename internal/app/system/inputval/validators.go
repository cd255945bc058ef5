// internal/app/system/inputval/validators.go
package inputval

import (
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidObjectID reports whether the string (after trimming) is a
// 24-character hex Mongo ObjectID.
func IsValidObjectID(id string) bool {
	id = strings.TrimSpace(id)
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// IsValidHTTPURL reports whether the string (after trimming) is an
// absolute http or https URL. Other schemes, scheme-relative URLs, and
// bare hostnames are rejected.
func IsValidHTTPURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
