package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation"
	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// ValidateConfig checks document-level rules that the navigation store cannot see: the
// format version and sidebar prefixes declared twice. Entry-level checks happen when the
// store is built.
func ValidateConfig(doc *Document) error {
	return newConfigurationValidator(doc).validate()
}

// configurationValidator coordinates document-level validation.
type configurationValidator struct {
	doc *Document
}

func newConfigurationValidator(doc *Document) *configurationValidator {
	return &configurationValidator{doc: doc}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateVersion(); err != nil {
		return err
	}
	res := cv.validatePrefixes().Combine(cv.validateSidebarFiles()).Combine(cv.validateRender())
	return res.ToError("invalid configuration")
}

func (cv *configurationValidator) validateVersion() error {
	if cv.doc.Version != Version {
		return derrors.ConfigError(fmt.Sprintf("unsupported configuration version %q (expected %q)", cv.doc.Version, Version)).
			WithPath("version").Build()
	}
	return nil
}

// validatePrefixes rejects keys that collide once surrounding whitespace is removed,
// including a prefix given both inline and as a sidebar file.
func (cv *configurationValidator) validatePrefixes() foundation.ValidationResult {
	res := foundation.Valid()
	seen := map[string]string{}

	check := func(section, key string) {
		path := fmt.Sprintf("%s[%q]", section, key)
		norm := strings.TrimSpace(key)
		if prev, dup := seen[norm]; dup {
			res.Add(foundation.NewValidationError(path, "duplicate", "sidebar prefix already defined at "+prev))
			return
		}
		seen[norm] = path
	}
	for _, k := range slices.Sorted(maps.Keys(cv.doc.Sidebar)) {
		check("sidebar", k)
	}
	for _, k := range slices.Sorted(maps.Keys(cv.doc.SidebarFiles)) {
		check("sidebar_files", k)
	}
	return res
}

func (cv *configurationValidator) validateSidebarFiles() foundation.ValidationResult {
	res := foundation.Valid()
	for _, k := range slices.Sorted(maps.Keys(cv.doc.SidebarFiles)) {
		if strings.TrimSpace(cv.doc.SidebarFiles[k]) == "" {
			res.Add(foundation.NewValidationError(fmt.Sprintf("sidebar_files[%q]", k), "required", "sidebar file path is empty"))
		}
	}
	return res
}

func (cv *configurationValidator) validateRender() foundation.ValidationResult {
	res := foundation.Valid()
	r := cv.doc.Render
	if r == nil || r.Format == "" {
		return res
	}
	if _, err := ParseRenderFormat(string(r.Format)); err != nil {
		fe := foundation.NewValidationError("render.format", "invalid", err.Error())
		fe.Value = r.Format
		res.Add(fe)
	}
	return res
}
