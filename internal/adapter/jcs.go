package adapter

import (
	"encoding/json"

	"github.com/gowebpki/jcs"
)

// JCS produces RFC 8785 canonical JSON, so equal values always hash the same
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Canonicalize(v any) ([]byte, error)
}

type realJCS struct{}

// NewJCS creates a canonicalizer backed by gowebpki/jcs
func NewJCS() JCS {
	return realJCS{}
}

func (realJCS) Canonicalize(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jcs.Transform(raw)
}
