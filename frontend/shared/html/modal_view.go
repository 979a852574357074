package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"effix/infrastructure/i18n"
)

// FieldType selects the form control.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
	FieldCheckbox FieldType = "checkbox"
	FieldMulti    FieldType = "multiselect"
)

// Field is one labelled form control.
type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Placeholder string
	Options     []string
	Wide        bool
}

// ModalForm is a dialog holding a POST form.
type ModalForm struct {
	ID     string
	Title  string
	Action string
	Fields []Field
}

// Modal renders form as a closed <dialog>.
func Modal(tr *i18n.Translator, form ModalForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<dialog id="`, esc(form.ID), `" class="modal"><form method="post" action="`, esc(form.Action), `" class="modal-box">`,
			`<h3>`, esc(form.Title), `</h3><div class="form-grid">`,
		); err != nil {
			return err
		}
		for _, f := range form.Fields {
			if err := writeField(w, f); err != nil {
				return err
			}
		}
		return writeAll(w,
			`</div><div class="modal-action">`,
			`<button type="button" class="btn btn-outline" onclick="this.closest('dialog').close()">`, esc(tr.T("button.cancel")), `</button>`,
			`<button type="submit" class="btn btn-primary">`, esc(tr.T("button.save")), `</button>`,
			`</div></form></dialog>`,
		)
	})
}

func writeField(w io.Writer, f Field) error {
	class := "field"
	if f.Wide || f.Type == FieldTextarea {
		class = "field field-wide"
	}
	id := "f-" + f.Name
	if f.Type == FieldCheckbox {
		checked := ""
		if f.Value == "true" || f.Value == "on" {
			checked = " checked"
		}
		return writeAll(w,
			`<label class="`, class, ` field-check"><input type="checkbox" id="`, esc(id), `" name="`, esc(f.Name), `"`, checked, `> `,
			esc(f.Label), `</label>`,
		)
	}
	if err := writeAll(w, `<div class="`, class, `"><label for="`, esc(id), `">`, esc(f.Label), `</label>`); err != nil {
		return err
	}
	var err error
	switch f.Type {
	case FieldSelect, FieldMulti:
		multiple := ""
		if f.Type == FieldMulti {
			multiple = " multiple"
		}
		if err = writeAll(w, `<select id="`, esc(id), `" name="`, esc(f.Name), `"`, multiple, `>`); err != nil {
			return err
		}
		for _, o := range f.Options {
			selected := ""
			if o == f.Value {
				selected = " selected"
			}
			if err = writeAll(w, `<option value="`, esc(o), `"`, selected, `>`, esc(o), `</option>`); err != nil {
				return err
			}
		}
		err = writeAll(w, `</select>`)
	case FieldTextarea:
		err = writeAll(w, `<textarea id="`, esc(id), `" name="`, esc(f.Name), `" placeholder="`, esc(f.Placeholder), `">`, esc(f.Value), `</textarea>`)
	default:
		typ := f.Type
		if typ == "" {
			typ = FieldText
		}
		err = writeAll(w, `<input type="`, string(typ), `" id="`, esc(id), `" name="`, esc(f.Name), `" value="`, esc(f.Value), `" placeholder="`, esc(f.Placeholder), `">`)
	}
	if err != nil {
		return err
	}
	return writeAll(w, `</div>`)
}
