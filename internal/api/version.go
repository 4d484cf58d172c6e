package api

import "context"

// VersionSpec is a single API version in <major.minor.revision> form.
type VersionSpec struct {
	Release string `json:"release"`
}

type versionCurrentEnvelope struct {
	Version *VersionSpec `json:"version"`
}

type versionSupportedEnvelope struct {
	Supported []VersionSpec `json:"supported"`
}

// Current returns the most updated version number.
func (s VersionService) Current(ctx context.Context) (string, error) {
	var env versionCurrentEnvelope
	if err := s.get(ctx, "/version/current.json", nil, &env); err != nil {
		return "", err
	}
	if env.Version == nil {
		return "", missingKey("version")
	}
	return env.Version.Release, nil
}

// Supported returns the list of version numbers the server supports.
func (s VersionService) Supported(ctx context.Context) ([]VersionSpec, error) {
	var env versionSupportedEnvelope
	if err := s.get(ctx, "/version/supported.json", nil, &env); err != nil {
		return nil, err
	}
	if env.Supported == nil {
		return nil, missingKey("supported")
	}
	return env.Supported, nil
}
