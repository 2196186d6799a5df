// Package codec converts a TaskList to and from the storage file format.
//
// The file holds a single JSON array of task objects:
//
//	[
//	  {"description": "buy milk", "date": "2024-01-15 09:30:00"}
//	]
//
// Dates use the fixed layout YYYY-MM-DD HH:MM:SS with no zone or fraction.
// The older array-of-strings format is not accepted.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/types"
)

const schemaURL = "todo.schema.json"

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["description", "date"],
    "properties": {
      "description": {"type": "string"},
      "date": {
        "type": "string",
        "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}$"
      }
    }
  }
}`

var fileSchema = jsonschema.MustCompileString(schemaURL, schemaJSON)

// Encode serializes the whole list as a compact JSON array. Descriptions are
// written as-is; <, > and & are not escaped.
func Encode(list *models.TaskList) ([]byte, error) {
	if list == nil {
		list = models.NewTaskList()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(list); err != nil {
		return nil, types.NewError(types.KindSyntax, "encode", "", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses storage file contents into a TaskList. Invalid JSON, a
// top-level value that is not an array, and malformed elements all yield the
// same ErrSyntax kind; the cause is wrapped for --verbose output.
func Decode(data []byte) (*models.TaskList, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, syntaxError(err)
	}
	if dec.More() {
		return nil, syntaxError(errors.New("unexpected data after top-level value"))
	}

	if err := fileSchema.Validate(doc); err != nil {
		return nil, syntaxError(schemaCause(err))
	}

	list := models.NewTaskList()
	if err := json.Unmarshal(data, list); err != nil {
		return nil, syntaxError(err)
	}
	return list, nil
}

func syntaxError(cause error) error {
	return types.NewError(types.KindSyntax, "decode", "", cause)
}

// schemaCause reduces a schema validation error to its first leaf cause.
func schemaCause(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if path := jsonPointerToPath(ve.InstanceLocation); path != "" {
		return fmt.Errorf("%s: %s", path, ve.Message)
	}
	return errors.New(ve.Message)
}

// jsonPointerToPath turns "/0/date" into "[0].date".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
