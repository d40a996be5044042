package parser

import (
	"encoding/json"
)

func (p Pos) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// MarshalJSON encodes a call as an object with its name, position and arguments.
// Terms are encoded as text, in the same syntax they are parsed.
func (c *Call) MarshalJSON() ([]byte, error) {
	args := make([]interface{}, len(c.Args))
	for i, arg := range c.Args {
		if call, ok := arg.(*Call); ok {
			args[i] = call
		} else {
			args[i] = arg.String()
		}
	}
	obj := map[string]interface{}{
		"Name": c.Name,
		"Pos":  c.Pos,
		"Args": args,
	}
	return json.Marshal(obj)
}

func (q *Query) MarshalJSON() ([]byte, error) {
	vars := make([]string, len(q.Vars))
	for i, x := range q.Vars {
		vars[i] = x.Name
	}
	obj := map[string]interface{}{
		"Calls": q.Calls,
		"Vars":  vars,
	}
	return json.Marshal(obj)
}
