package model

import (
	"encoding/json"
	"fmt"
)

// Op is the kind of edit a Command performs.
type Op string

const (
	OpSetField   Op = "set_field"
	OpAddItem    Op = "add_item"
	OpRemoveItem Op = "remove_item"
	OpUpdateItem Op = "update_item"
)

// Command is one edit to a Document. Which of Field, List, Index and Value
// are meaningful depends on Op.
type Command struct {
	Op    Op
	Field Field
	List  List
	Index int
	Value string
}

func SetField(f Field, value string) Command {
	return Command{Op: OpSetField, Field: f, Value: value}
}

func AddItem(l List) Command {
	return Command{Op: OpAddItem, List: l}
}

func RemoveItem(l List, index int) Command {
	return Command{Op: OpRemoveItem, List: l, Index: index}
}

func UpdateItem(l List, index int, value string) Command {
	return Command{Op: OpUpdateItem, List: l, Index: index, Value: value}
}

// Apply runs the command against d and reports whether d changed. Refused
// removals and out-of-range updates leave d untouched.
func (c Command) Apply(d *Document) bool {
	switch c.Op {
	case OpSetField:
		d.SetField(c.Field, c.Value)
		return true
	case OpAddItem:
		d.AddListItem(c.List)
		return true
	case OpRemoveItem:
		return d.RemoveListItem(c.List, c.Index)
	case OpUpdateItem:
		return d.UpdateListItem(c.List, c.Index, c.Value)
	}
	return false
}

type wireCommand struct {
	Op    Op     `json:"op"`
	Field string `json:"field,omitempty"`
	List  string `json:"list,omitempty"`
	Index int    `json:"index"`
	Value string `json:"value"`
}

func (c Command) MarshalJSON() ([]byte, error) {
	w := wireCommand{Op: c.Op, Index: c.Index, Value: c.Value}
	switch c.Op {
	case OpSetField:
		w.Field = c.Field.String()
	default:
		w.List = c.List.String()
	}
	return json.Marshal(w)
}

// DecodeCommand checks raw against the command schema and decodes it.
func DecodeCommand(raw []byte) (Command, error) {
	if err := ValidateCommand(raw); err != nil {
		return Command{}, err
	}
	var w wireCommand
	if err := json.Unmarshal(raw, &w); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	c := Command{Op: w.Op, Index: w.Index, Value: w.Value}
	var err error
	switch w.Op {
	case OpSetField:
		c.Field, err = ParseField(w.Field)
	case OpAddItem, OpRemoveItem, OpUpdateItem:
		c.List, err = ParseList(w.List)
	default:
		err = fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, w.Op)
	}
	if err != nil {
		return Command{}, err
	}
	return c, nil
}
