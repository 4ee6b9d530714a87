// Package formspec renders create/edit forms from a declarative field list.
// The field kinds form a sealed union: only the types in this package
// implement Field, so a renderer switching over them can never meet an
// unknown kind at runtime.
package formspec

import (
	"fmt"
	"strconv"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// Field is one control of a declarative form. The interface is sealed; the
// only implementations are Text, Textarea, Switch and Select.
type Field interface {
	Name() string
	Label() string
	// Validate returns a non-empty message when the bound value violates the
	// field's rules.
	Validate(value string) string

	sealed()
}

// Text is a single-line text input.
type Text struct {
	FieldName   string
	FieldLabel  string
	Placeholder string
	Required    bool
	MaxLen      int
	Disabled    bool
}

func (t Text) Name() string  { return t.FieldName }
func (t Text) Label() string { return t.FieldLabel }
func (t Text) Validate(v string) string {
	return validateText(t.FieldLabel, v, t.Required, t.MaxLen)
}
func (Text) sealed() {}

// Textarea is a multi-line text input.
type Textarea struct {
	FieldName   string
	FieldLabel  string
	Placeholder string
	Required    bool
	MaxLen      int
	Rows        int
	Disabled    bool
}

func (t Textarea) Name() string  { return t.FieldName }
func (t Textarea) Label() string { return t.FieldLabel }
func (t Textarea) Validate(v string) string {
	return validateText(t.FieldLabel, v, t.Required, t.MaxLen)
}
func (Textarea) sealed() {}

// Switch is a boolean toggle. Its bound value is "true" or "false"; an
// empty value reads as false.
type Switch struct {
	FieldName  string
	FieldLabel string
	Disabled   bool
}

func (s Switch) Name() string  { return s.FieldName }
func (s Switch) Label() string { return s.FieldLabel }
func (s Switch) Validate(v string) string {
	if v == "" {
		return ""
	}
	if _, err := strconv.ParseBool(v); err != nil {
		return s.FieldLabel + " must be true or false"
	}
	return ""
}
func (Switch) sealed() {}

// Select is a single-choice control. Options must be populated before the
// field is rendered; a Select with a LoadOptions func and a DependsOn parent
// is refilled whenever the parent's value changes, and its own value is
// cleared at the same time.
type Select struct {
	FieldName  string
	FieldLabel string
	Required   bool
	Options    []sdk.Option
	DependsOn  string
	Disabled   bool
}

func (s Select) Name() string  { return s.FieldName }
func (s Select) Label() string { return s.FieldLabel }
func (s Select) Validate(v string) string {
	if v == "" {
		if s.Required {
			return s.FieldLabel + " is required"
		}
		return ""
	}
	for _, o := range s.Options {
		if o.Value == v {
			return ""
		}
	}
	return s.FieldLabel + " has an invalid choice"
}
func (Select) sealed() {}

func validateText(label, v string, required bool, maxLen int) string {
	if required && v == "" {
		return label + " is required"
	}
	if maxLen > 0 && len(v) > maxLen {
		return fmt.Sprintf("%s must be at most %d characters", label, maxLen)
	}
	return ""
}
