package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidCommand = errors.New("invalid command")

//go:embed schema/command.schema.json
var commandSchemaJSON []byte

var (
	commandSchemaOnce sync.Once
	commandSchema     *gojsonschema.Schema
	commandSchemaErr  error
)

func loadCommandSchema() (*gojsonschema.Schema, error) {
	commandSchemaOnce.Do(func() {
		commandSchema, commandSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(commandSchemaJSON))
	})
	return commandSchema, commandSchemaErr
}

// ValidateCommand checks the shape of a JSON edit command: known op, known
// field or list name, integer index, string value. Field contents are not
// inspected.
func ValidateCommand(raw []byte) error {
	schema, err := loadCommandSchema()
	if err != nil {
		return err
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidCommand, strings.Join(msgs, "; "))
}
