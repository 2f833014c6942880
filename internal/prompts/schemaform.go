// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/robcelta/schemactl/internal/catalog"
	"github.com/robcelta/schemactl/internal/formdata"
)

// RunSchemaForm renders the fields of a schema type as an interactive form
// and writes the raw input into values. Scalar fields come first in catalog
// order; array fields follow as repeated sub-forms.
//
// Required fields are not enforced here: the validator reports the complete
// picture afterwards, matching how the tool behaves with a values file.
func RunSchemaForm(typ catalog.Type, values formdata.Values) error {
	if err := runScalarFields(typ, values); err != nil {
		return err
	}
	for _, field := range typ.Fields {
		if field.Kind != catalog.KindArray {
			continue
		}
		records, err := runArrayField(field)
		if err != nil {
			return err
		}
		values[field.Key] = records
	}
	return nil
}

func runScalarFields(typ catalog.Type, values formdata.Values) error {
	inputs := make(map[string]*string)
	var fields []huh.Field

	for _, f := range typ.Fields {
		if f.Kind == catalog.KindArray {
			continue
		}
		current := values.String(f.Key)
		inputs[f.Key] = &current
		fields = append(fields, widget(f, inputs[f.Key]))
	}
	if len(fields) == 0 {
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run(); err != nil {
		return err
	}
	for key, input := range inputs {
		values[key] = *input
	}
	return nil
}

func runArrayField(field catalog.Field) ([]formdata.Record, error) {
	var records []formdata.Record
	for {
		inputs := make(map[string]*string, len(field.ItemFields))
		var fields []huh.Field
		for _, sub := range field.ItemFields {
			value := ""
			inputs[sub.Key] = &value
			fields = append(fields, widget(sub, inputs[sub.Key]))
		}

		more := false
		fields = append(fields, huh.NewConfirm().
			Title(fmt.Sprintf("Add another entry to %s?", field.Label)).
			Value(&more))

		if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run(); err != nil {
			return nil, err
		}

		record := make(formdata.Record, len(inputs))
		for key, input := range inputs {
			record[key] = *input
		}
		records = append(records, record)

		if !more {
			return records, nil
		}
	}
}

// widget maps a field definition to the matching huh input widget.
func widget(f catalog.Field, value *string) huh.Field {
	switch f.Kind {
	case catalog.KindSelect:
		options := make([]huh.Option[string], 0, len(f.Options))
		for _, opt := range f.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		return huh.NewSelect[string]().
			Title(f.Label).
			Options(options...).
			Value(value)
	case catalog.KindTextarea:
		return huh.NewText().
			Title(f.Label).
			Placeholder(f.Placeholder).
			Value(value)
	default:
		return huh.NewInput().
			Title(f.Label).
			Prompt(": ").
			Inline(true).
			Placeholder(f.Placeholder).
			Value(value)
	}
}
