package parser

import (
	"fmt"
	"sort"

	"github.com/brunokim/relational/errors"
	"github.com/brunokim/relational/logic"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// FactsFile is the YAML representation of fact tables, like
//
//	facts:
//	  parent:
//	    - [ana, bia]
//	    - [ana, caio]
//	  age:
//	    - [ana, 62]
//
// Scalars become numbers, booleans or strings, and lists become sequences.
type FactsFile struct {
	Facts map[string][][]interface{} `yaml:"facts"`
}

// Consult adds all fact tables from YAML data to the registry. Tables are added in
// name order.
func (r *Registry) Consult(data []byte) error {
	var file FactsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.New("parsing facts: %v", err)
	}
	names := make([]string, 0, len(file.Facts))
	for name := range file.Facts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows := make([][]logic.Term, len(file.Facts[name]))
		for i, values := range file.Facts[name] {
			row, err := decodeValues(values)
			if err != nil {
				return errors.New("%s: row #%d: %v", name, i, err)
			}
			rows[i] = row
		}
		if err := r.AddFacts(name, rows...); err != nil {
			return err
		}
	}
	return nil
}

func decodeValues(values []interface{}) ([]logic.Term, error) {
	terms := make([]logic.Term, len(values))
	for i, value := range values {
		t, err := decodeValue(value)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	return terms, nil
}

func decodeValue(value interface{}) (logic.Term, error) {
	switch v := value.(type) {
	case int:
		return logic.Number{Value: float64(v)}, nil
	case int64:
		return logic.Number{Value: float64(v)}, nil
	case uint64:
		return logic.Number{Value: float64(v)}, nil
	case float64:
		return logic.Number{Value: v}, nil
	case string:
		return logic.String{Value: norm.NFC.String(v)}, nil
	case bool:
		return logic.Bool{Value: v}, nil
	case []interface{}:
		items, err := decodeValues(v)
		if err != nil {
			return nil, err
		}
		return logic.NewSeq(items...), nil
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", value, value)
}
