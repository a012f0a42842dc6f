package model

import (
	"errors"
	"fmt"
)

// Go models for the document backing one editing session.

var (
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownList  = errors.New("unknown list")
)

// Field names one of the scalar text fields of a Document.
type Field int

const (
	FieldName Field = iota
	FieldTitle
	FieldEmail
	FieldPhone
	FieldAddress
	FieldSummary
)

var fieldNames = [...]string{"name", "title", "email", "phone", "address", "summary"}

// Fields lists every scalar field in form order.
func Fields() []Field {
	return []Field{FieldName, FieldTitle, FieldEmail, FieldPhone, FieldAddress, FieldSummary}
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField maps a wire name such as "email" to its Field.
func ParseField(s string) (Field, error) {
	for i, n := range fieldNames {
		if n == s {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// List names one of the editable string sequences of a Document.
type List int

const (
	ListSkills List = iota
	ListAchievements
)

var listNames = [...]string{"skills", "achievements"}

func (l List) String() string {
	if l < 0 || int(l) >= len(listNames) {
		return fmt.Sprintf("List(%d)", int(l))
	}
	return listNames[l]
}

// ParseList maps a wire name such as "skills" to its List.
func ParseList(s string) (List, error) {
	for i, n := range listNames {
		if n == s {
			return List(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownList, s)
}

type Experience struct {
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Year        string `json:"year" yaml:"year"`
	Details     string `json:"details" yaml:"details"`
}

// Document is the resume being edited. Experience and Education keep their
// initial shape only; nothing edits them.
type Document struct {
	Name         string       `json:"name" yaml:"name"`
	Title        string       `json:"title" yaml:"title"`
	Email        string       `json:"email" yaml:"email"`
	Phone        string       `json:"phone" yaml:"phone"`
	Address      string       `json:"address" yaml:"address"`
	Summary      string       `json:"summary" yaml:"summary"`
	Experience   []Experience `json:"experience" yaml:"experience"`
	Education    []Education  `json:"education" yaml:"education"`
	Skills       []string     `json:"skills" yaml:"skills"`
	Achievements []string     `json:"achievements" yaml:"achievements"`
}

// NewDocument returns the initial state of an editing session.
func NewDocument() *Document {
	return &Document{
		Experience:   []Experience{{}},
		Education:    []Education{{}},
		Skills:       []string{""},
		Achievements: []string{""},
	}
}

// Normalize restores the list floor on a document that came from outside
// (a file or a decoded payload): nil sequences become a single blank entry.
func (d *Document) Normalize() {
	if len(d.Skills) == 0 {
		d.Skills = []string{""}
	}
	if len(d.Achievements) == 0 {
		d.Achievements = []string{""}
	}
	if len(d.Experience) == 0 {
		d.Experience = []Experience{{}}
	}
	if len(d.Education) == 0 {
		d.Education = []Education{{}}
	}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := *d
	c.Experience = append([]Experience(nil), d.Experience...)
	c.Education = append([]Education(nil), d.Education...)
	c.Skills = append([]string(nil), d.Skills...)
	c.Achievements = append([]string(nil), d.Achievements...)
	return &c
}

// Field returns the value of a scalar field.
func (d *Document) Field(f Field) string {
	if p := d.fieldPtr(f); p != nil {
		return *p
	}
	return ""
}

// SetField replaces a scalar field. Any string is accepted.
func (d *Document) SetField(f Field, value string) {
	if p := d.fieldPtr(f); p != nil {
		*p = value
	}
}

func (d *Document) fieldPtr(f Field) *string {
	switch f {
	case FieldName:
		return &d.Name
	case FieldTitle:
		return &d.Title
	case FieldEmail:
		return &d.Email
	case FieldPhone:
		return &d.Phone
	case FieldAddress:
		return &d.Address
	case FieldSummary:
		return &d.Summary
	}
	return nil
}

// Items returns the current elements of a list. The slice is owned by the
// document.
func (d *Document) Items(l List) []string {
	if p := d.listPtr(l); p != nil {
		return *p
	}
	return nil
}

// AddListItem appends an empty entry.
func (d *Document) AddListItem(l List) {
	if p := d.listPtr(l); p != nil {
		*p = append(*p, "")
	}
}

// RemoveListItem deletes the entry at index and reports whether it did.
// A list is never shrunk below one entry, and out-of-range indexes are
// ignored.
func (d *Document) RemoveListItem(l List, index int) bool {
	p := d.listPtr(l)
	if p == nil || len(*p) <= 1 || index < 0 || index >= len(*p) {
		return false
	}
	items := make([]string, 0, len(*p)-1)
	items = append(items, (*p)[:index]...)
	items = append(items, (*p)[index+1:]...)
	*p = items
	return true
}

// UpdateListItem replaces the entry at index and reports whether it did.
func (d *Document) UpdateListItem(l List, index int, value string) bool {
	p := d.listPtr(l)
	if p == nil || index < 0 || index >= len(*p) {
		return false
	}
	(*p)[index] = value
	return true
}

func (d *Document) listPtr(l List) *[]string {
	switch l {
	case ListSkills:
		return &d.Skills
	case ListAchievements:
		return &d.Achievements
	}
	return nil
}
