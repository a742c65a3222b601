package uri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrInvalidDataURI is returned when a data URI does not follow RFC 2397
	ErrInvalidDataURI = errors.New("invalid data URI")
)

// DataURI is a parsed RFC 2397 data URI
type DataURI struct {
	// MimeType is the declared media type, text/plain when omitted
	MimeType string
	// Base64 reports whether the payload was base64 encoded
	Base64 bool
	// Data is the decoded payload
	Data []byte
}

// IsDataURI reports whether the URI uses the data: scheme
func IsDataURI(uri string) bool {
	return strings.HasPrefix(strings.ToLower(uri), "data:")
}

// ParseDataURI parses data:[<mediatype>][;base64],<data>
func ParseDataURI(uri string) (*DataURI, error) {
	if !IsDataURI(uri) {
		return nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}

	header, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma", ErrInvalidDataURI)
	}

	parsed := &DataURI{MimeType: "text/plain"}
	params := strings.Split(header, ";")
	if mt := strings.TrimSpace(params[0]); mt != "" {
		parsed.MimeType = strings.ToLower(mt)
	}
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			parsed.Base64 = true
		}
	}

	if parsed.Base64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some producers strip the padding
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
			if err != nil {
				return nil, fmt.Errorf("%w: failed to decode base64: %v", ErrInvalidDataURI, err)
			}
		}
		parsed.Data = data
		return parsed, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unescape payload: %v", ErrInvalidDataURI, err)
	}
	parsed.Data = []byte(data)

	return parsed, nil
}

// DetectedMimeType returns the mime type sniffed from the payload,
// falling back to the declared one when the content is not recognized
func (d *DataURI) DetectedMimeType() string {
	if len(d.Data) == 0 {
		return d.MimeType
	}
	detected := mimetype.Detect(d.Data)
	if detected.Is("application/octet-stream") || detected.Is("text/plain") {
		return d.MimeType
	}
	return detected.String()
}

// IsMedia reports whether the declared mime type is image/* or video/*
func (d *DataURI) IsMedia() bool {
	return strings.HasPrefix(d.MimeType, "image/") || strings.HasPrefix(d.MimeType, "video/")
}
