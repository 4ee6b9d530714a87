package formspec

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// ErrValidation is returned by Submit when client-side validation failed.
// No network call has been made in that case.
var ErrValidation = errors.New("validation failed")

// OptionsLoader refetches the options of a dependent select when its parent
// value changes.
type OptionsLoader func(ctx context.Context, parentValue string) ([]sdk.Option, error)

// SubmitFunc receives the validated values, typically issuing a POST or PUT.
type SubmitFunc func(ctx context.Context, values map[string]string) error

// Form binds values to a field list and runs the validate-then-submit
// cycle. Values survive a failed submit so nothing has to be re-entered.
type Form struct {
	fields  []Field
	values  map[string]string
	errs    map[string]string
	loaders map[string]OptionsLoader
}

// New initializes form state from the default values. Identifier-like
// defaults (ints, bools, floats) are coerced to their string representation
// for control binding.
func New(fields []Field, defaults map[string]any) *Form {
	f := &Form{
		fields:  fields,
		values:  map[string]string{},
		errs:    map[string]string{},
		loaders: map[string]OptionsLoader{},
	}
	for _, fld := range fields {
		if v, ok := defaults[fld.Name()]; ok {
			f.values[fld.Name()] = coerce(v)
		}
	}
	return f
}

// Fields returns the field list in declaration order.
func (f *Form) Fields() []Field { return f.fields }

// Value returns the bound value of a field.
func (f *Form) Value(name string) string { return f.values[name] }

// Errors returns the per-field messages from the last Submit.
func (f *Form) Errors() map[string]string { return f.errs }

// SetLoader registers the options loader for a dependent select field.
func (f *Form) SetLoader(fieldName string, l OptionsLoader) { f.loaders[fieldName] = l }

// Set assigns a field value. When another select declares this field as its
// parent, that select's options are refetched and its current value cleared.
func (f *Form) Set(ctx context.Context, name, value string) error {
	f.values[name] = value
	for i, fld := range f.fields {
		sel, ok := fld.(Select)
		if !ok || sel.DependsOn != name {
			continue
		}
		f.values[sel.FieldName] = ""
		loader := f.loaders[sel.FieldName]
		if loader == nil {
			sel.Options = nil
			f.fields[i] = sel
			continue
		}
		opts, err := loader(ctx, value)
		if err != nil {
			sel.Options = nil
			f.fields[i] = sel
			return fmt.Errorf("load options for %s: %w", sel.FieldName, err)
		}
		sel.Options = opts
		f.fields[i] = sel
	}
	return nil
}

// Submit validates every field and, only when all pass, invokes the caller's
// submit func. Validation failure annotates each offending field and makes
// no network call. Server-side field errors are folded back into the same
// annotations.
func (f *Form) Submit(ctx context.Context, fn SubmitFunc) error {
	f.errs = map[string]string{}
	for _, fld := range f.fields {
		if msg := fld.Validate(f.values[fld.Name()]); msg != "" {
			f.errs[fld.Name()] = msg
		}
	}
	if len(f.errs) > 0 {
		return ErrValidation
	}
	vals := make(map[string]string, len(f.values))
	for k, v := range f.values {
		vals[k] = v
	}
	err := fn(ctx, vals)
	if err == nil {
		return nil
	}
	var apiErr *sdk.APIError
	if errors.As(err, &apiErr) {
		for field, msg := range apiErr.Fields {
			f.errs[field] = msg
		}
	}
	return err
}

func coerce(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return fmt.Sprintf("%t", x)
	case int:
		return fmt.Sprintf("%d", x)
	case int64:
		return fmt.Sprintf("%d", x)
	case uint64:
		return fmt.Sprintf("%d", x)
	case float64:
		return fmt.Sprintf("%g", x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
