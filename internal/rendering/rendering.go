// Package rendering turns documents and previews into HTML: the editor page,
// the preview fragment it refreshes, and the standalone document that is
// printed to PDF.
package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

//go:embed templates/*.html templates/style.css
var templatesFS embed.FS

// Input describes one scalar field of the editor form.
type Input struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Multiline   bool
	Value       string
}

// ListInput describes one editable list of the editor form.
type ListInput struct {
	Name        string
	Label       string
	Placeholder string
	Items       []string
	// Removable is false while the list holds a single entry.
	Removable bool
}

type formField struct {
	label, typ, placeholder string
	multiline               bool
}

var formFields = map[model.Field]formField{
	model.FieldName:    {label: "Full Name", typ: "text", placeholder: "John Doe"},
	model.FieldTitle:   {label: "Professional Title", typ: "text", placeholder: "Senior Software Engineer"},
	model.FieldEmail:   {label: "Email", typ: "email", placeholder: "you@example.com"},
	model.FieldPhone:   {label: "Phone", typ: "tel", placeholder: "+1 (555) 123-4567"},
	model.FieldAddress: {label: "Address", typ: "text", placeholder: "123 Main St, City, State"},
	model.FieldSummary: {label: "Professional Summary", placeholder: "Short description of your experience and goals...", multiline: true},
}

var formLists = []struct {
	list               model.List
	label, placeholder string
}{
	{model.ListSkills, "Skills", "Skill"},
	{model.ListAchievements, "Achievements", "Achievement"},
}

// PageData is the input of the editor page template.
type PageData struct {
	SessionID string
	Inputs    []Input
	Lists     []ListInput
	View      usecase.View
	CSS       template.CSS
}

type printData struct {
	View usecase.View
	CSS  template.CSS
}

// Renderer executes the embedded templates.
type Renderer struct {
	tpl *template.Template
	css template.CSS
}

func New() (*Renderer, error) {
	tpl, err := template.New("resume").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, &RenderError{Template: "templates", Cause: err}
	}
	css, err := templatesFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, &RenderError{Template: "style.css", Cause: err}
	}
	return &Renderer{tpl: tpl, css: template.CSS(css)}, nil
}

// NewPageData lays the document out as form inputs next to its preview.
func (r *Renderer) NewPageData(sessionID string, d *model.Document, v usecase.View) PageData {
	data := PageData{SessionID: sessionID, View: v, CSS: r.css}
	for _, f := range model.Fields() {
		ff := formFields[f]
		data.Inputs = append(data.Inputs, Input{
			Name:        f.String(),
			Label:       ff.label,
			Type:        ff.typ,
			Placeholder: ff.placeholder,
			Multiline:   ff.multiline,
			Value:       d.Field(f),
		})
	}
	for _, l := range formLists {
		items := d.Items(l.list)
		data.Lists = append(data.Lists, ListInput{
			Name:        l.list.String(),
			Label:       l.label,
			Placeholder: l.placeholder,
			Items:       items,
			Removable:   len(items) > 1,
		})
	}
	return data
}

// Page writes the full editor page.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.execute(w, "page", data)
}

// Preview writes the preview fragment.
func (r *Renderer) Preview(w io.Writer, v usecase.View) error {
	return r.execute(w, "preview", v)
}

// Printable returns a self-contained HTML document holding only the preview.
func (r *Renderer) Printable(v usecase.View) (string, error) {
	var buf bytes.Buffer
	if err := r.execute(&buf, "print", printData{View: v, CSS: r.css}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tpl.ExecuteTemplate(w, name, data); err != nil {
		return &RenderError{Template: name, Cause: err}
	}
	return nil
}
