package inventory

import (
	"github.com/distribution/reference"
)

// ImageRef is the parsed form of a container image reference.
type ImageRef struct {
	Registry   string `json:"registry,omitempty" yaml:"registry,omitempty"`
	Repository string `json:"repository" yaml:"repository"`
	Tag        string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Digest     string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// ParseImageRef normalizes an image reference string into its registry,
// repository, tag, and digest parts. Returns nil when the reference does not
// parse; callers keep the raw string either way.
func ParseImageRef(image string) *ImageRef {
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return nil
	}

	ref := &ImageRef{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}
	if digested, ok := named.(reference.Digested); ok {
		ref.Digest = digested.Digest().String()
	}
	return ref
}
