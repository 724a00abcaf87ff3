package model

import "github.com/m-mizutani/ampship/pkg/domain/types"

// Project is a local directory inspected for deployment.
type Project struct {
	Path              string
	Framework         types.Framework
	HasManifest       bool
	HasVersionControl bool
	// FrameworkOverridden is set when Framework came from the caller instead of detection.
	FrameworkOverridden bool
}

// PackageManifest is the subset of package.json used for detection.
type PackageManifest struct {
	Name            string            `json:"name"`
	Keywords        []string          `json:"keywords"`
	Bin             any               `json:"bin"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func (x *PackageManifest) HasDependency(name string) bool {
	if _, ok := x.Dependencies[name]; ok {
		return true
	}
	_, ok := x.DevDependencies[name]
	return ok
}
