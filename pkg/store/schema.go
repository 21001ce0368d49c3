package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const stateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["activeCategoryId", "categories"],
  "properties": {
    "activeCategoryId": {"type": "string", "minLength": 1},
    "categories": {
      "type": "array",
      "minItems": 2,
      "items": {"$ref": "#/definitions/category"}
    }
  },
  "definitions": {
    "category": {
      "type": "object",
      "required": ["id", "name", "locked", "items"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "name": {"type": "string", "minLength": 1},
        "locked": {"type": "boolean"},
        "items": {"type": "array", "items": {"$ref": "#/definitions/item"}}
      }
    },
    "item": {
      "type": "object",
      "required": ["id", "text", "done", "createdAt"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "text": {"type": "string", "minLength": 1},
        "done": {"type": "boolean"},
        "createdAt": {"type": "number"}
      }
    }
  }
}`

const plannerSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "patternProperties": {
    "^[0-9]{4}-[0-9]{2}-[0-9]{2}$": {
      "type": "object",
      "required": ["note", "worked"],
      "properties": {
        "note": {"type": "string"},
        "worked": {"type": "boolean"}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

var (
	schemasOnce sync.Once
	schemas     map[string]*jsonschema.Schema
	schemasErr  error
)

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	schemasOnce.Do(func() {
		sources := map[string]string{
			SlotState:   stateSchema,
			SlotPlanner: plannerSchema,
		}
		schemas = make(map[string]*jsonschema.Schema, len(sources))
		for slot, src := range sources {
			url := "listplan://" + slot + ".json"
			compiler := jsonschema.NewCompiler()
			if err := compiler.AddResource(url, strings.NewReader(src)); err != nil {
				schemasErr = fmt.Errorf("store: add schema %s: %w", slot, err)
				return
			}
			s, err := compiler.Compile(url)
			if err != nil {
				schemasErr = fmt.Errorf("store: compile schema %s: %w", slot, err)
				return
			}
			schemas[slot] = s
		}
	})
	return schemas, schemasErr
}

// SchemaError lists every schema violation found in a slot.
type SchemaError struct {
	Slot     string
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("store: %s does not match the current schema: %s", e.Slot, strings.Join(e.Problems, "; "))
}

// Validate checks data against the current schema of slot. Slots without a
// schema (legacy slots) are only checked for well-formed JSON.
func Validate(slot string, data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("store: %s is not valid JSON: %w", slot, err)
	}
	all, err := compileSchemas()
	if err != nil {
		return err
	}
	schema, ok := all[slot]
	if !ok {
		return nil
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		se := &SchemaError{Slot: slot}
		collectProblems(ve, &se.Problems)
		return se
	}
	return nil
}

func collectProblems(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectProblems(cause, out)
	}
}
