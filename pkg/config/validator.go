package config

import (
	"fmt"
	"sort"
	"strings"
)

// Variant selects one of the known validation rule sets. The set is closed:
// each config file the pipeline touches maps to exactly one variant.
type Variant int

const (
	// ComposeDefault validates the required docker-compose base document.
	ComposeDefault Variant = iota
	// ComposeCustom validates the optional docker-compose override document.
	ComposeCustom
	// PackagesDefault validates the required package list document.
	PackagesDefault
	// PackagesCustom validates the optional package override document.
	PackagesCustom
)

func (v Variant) String() string {
	switch v {
	case ComposeDefault:
		return "compose"
	case ComposeCustom:
		return "compose-custom"
	case PackagesDefault:
		return "packages"
	case PackagesCustom:
		return "packages-custom"
	default:
		return "unknown"
	}
}

// Result is the outcome of validating one document. Warnings never imply
// failure; Reason is set only when Valid is false.
type Result struct {
	Valid    bool
	Reason   string
	Warnings []string
}

// composeCustomAllowedKeys are the override keys users may set under
// services.devcontainer. Anything else is reported but not rejected.
var composeCustomAllowedKeys = map[string]bool{
	"environment": true,
	"volumes":     true,
	"devices":     true,
	"ports":       true,
	"cap_add":     true,
	"extra_hosts": true,
}

// packagesCustomAllowedSections are the top-level sections users may
// override in the packages custom document.
var packagesCustomAllowedSections = map[string]bool{
	"base":   true,
	"devenv": true,
}

// Validate applies the variant's rules to a loaded document. Malformed
// content never produces an error, only a failed or warning-carrying
// Result; syntax problems are the loader's concern.
func (v Variant) Validate(doc Document) Result {
	switch v {
	case ComposeDefault:
		return validateCompose(doc)
	case ComposeCustom:
		return validateComposeCustom(doc)
	case PackagesDefault:
		return validatePackages(doc)
	case PackagesCustom:
		return validatePackagesCustom(doc)
	default:
		return Result{Reason: fmt.Sprintf("unknown validator variant %d", int(v))}
	}
}

func validateCompose(doc Document) Result {
	if _, ok := devcontainerService(doc); !ok {
		return Result{Reason: "missing services.devcontainer"}
	}
	return Result{Valid: true}
}

func validateComposeCustom(doc Document) Result {
	svc, ok := devcontainerService(doc)
	if !ok {
		return Result{Reason: "missing services.devcontainer"}
	}
	var unknown []string
	for key := range svc {
		if !composeCustomAllowedKeys[key] {
			unknown = append(unknown, key)
		}
	}
	res := Result{Valid: true}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		res.Warnings = append(res.Warnings, fmt.Sprintf("unknown keys: %s", strings.Join(unknown, ", ")))
	}
	return res
}

func validatePackages(doc Document) Result {
	for _, field := range []string{"image_name", "image_tag"} {
		if _, ok := doc.StringField(field); !ok {
			return Result{Reason: fmt.Sprintf("missing or invalid %q", field)}
		}
	}
	base, ok := doc.Mapping("base")
	if !ok {
		return Result{Reason: "missing or invalid 'base.packages'"}
	}
	if _, ok := base.Sequence("packages"); !ok {
		return Result{Reason: "missing or invalid 'base.packages'"}
	}
	return Result{Valid: true}
}

func validatePackagesCustom(doc Document) Result {
	var unknown []string
	for key := range doc {
		if !packagesCustomAllowedSections[key] {
			unknown = append(unknown, key)
		}
	}
	res := Result{Valid: true}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		res.Warnings = append(res.Warnings, fmt.Sprintf("unknown sections: %s", strings.Join(unknown, ", ")))
	}
	return res
}

func devcontainerService(doc Document) (Document, bool) {
	services, ok := doc.Mapping("services")
	if !ok {
		return nil, false
	}
	return services.Mapping("devcontainer")
}
