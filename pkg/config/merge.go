package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/mohae/deepcopy"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// mergeRule names one (section, field) pair whose sequences are merged by
// appending custom elements after the default ones. The table is fixed:
// anything outside it passes through from the default document unchanged.
type mergeRule struct {
	section string
	field   string
}

var mergeRules = []mergeRule{
	{"base", "packages"},
	{"base", "python_tools"},
	{"devenv", "packages"},
	{"devenv", "python_tools"},
}

// MergePackages combines the default packages document with an optional
// custom override. The merge is append-only: sequence fields listed in the
// merge table gain the custom elements after the default ones, and scalar
// fields (image_name, image_tag) always come from the default document.
// A nil custom document yields a deep copy of the default.
func MergePackages(def, custom Document) (Document, error) {
	merged, ok := deepcopy.Copy(map[string]any(def)).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to copy default document")
	}
	if custom == nil {
		return merged, nil
	}

	overlay := make(map[string]any)
	for _, rule := range mergeRules {
		section, ok := custom.Mapping(rule.section)
		if !ok {
			continue
		}
		seq, ok := section.Sequence(rule.field)
		if !ok || len(seq) == 0 {
			continue
		}
		target, ok := overlay[rule.section].(map[string]any)
		if !ok {
			target = make(map[string]any)
			overlay[rule.section] = target
		}
		target[rule.field] = seq
	}
	if len(overlay) == 0 {
		return merged, nil
	}

	if err := mergo.Merge(&merged, overlay, mergo.WithAppendSlice); err != nil {
		return nil, fmt.Errorf("failed to merge package overrides: %w", err)
	}
	return merged, nil
}

// WriteDocument serializes doc as YAML to path, fully overwriting any
// previous content.
func WriteDocument(fsys afero.Fs, path string, doc Document) error {
	data, err := yaml.Marshal(map[string]any(doc))
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ImageRef identifies the container base image recorded in a packages
// document. Empty fields mean the document did not carry the value.
type ImageRef struct {
	Name string
	Tag  string
}

// ReadImageRef extracts image_name/image_tag from the merged packages file.
// The read is best-effort: any failure reports ok=false and the caller
// applies its fallbacks instead of treating this as an error.
func ReadImageRef(fsys afero.Fs, path string) (ImageRef, bool) {
	doc, err := LoadDocument(fsys, path)
	if err != nil {
		return ImageRef{}, false
	}
	var ref ImageRef
	ref.Name, _ = doc.StringField("image_name")
	ref.Tag, _ = doc.StringField("image_tag")
	return ref, true
}
