package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names in issues, not Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("utcdatetime", isUTCDatetime); err != nil {
		panic(err)
	}
	return v
}

// Batch decodes raw as a JSON array and checks every element against the
// constraint set W. It returns either all decoded elements or Issues
// describing every element that failed.
func Batch[W any](raw json.RawMessage) ([]W, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, Issues{{Message: "expected array, got null"}}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, Issues{{Message: typeMessage("array", err)}}
	}

	out := make([]W, 0, len(elems))
	var issues Issues
	for i, elem := range elems {
		w, elemIssues := One[W](elem, fmt.Sprintf("[%d]", i))
		if len(elemIssues) > 0 {
			issues = append(issues, elemIssues...)
			continue
		}
		out = append(out, w)
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// One checks a single JSON value against W. prefix is prepended to issue paths.
func One[W any](raw json.RawMessage, prefix string) (W, Issues) {
	var w W

	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return w, Issues{{Path: prefix, Message: "expected object, got null"}}
	}

	// encoding/json matches keys case-insensitively; keep only the exact
	// wire names so "ID" never stands in for "id".
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return w, Issues{{Path: prefix, Message: typeMessage("object", err)}}
	}
	exact, err := json.Marshal(exactKeys[W](obj))
	if err != nil {
		return w, Issues{{Path: prefix, Message: err.Error()}}
	}

	var issues Issues
	seen := map[string]bool{}

	if err := json.Unmarshal(exact, &w); err != nil {
		var te *json.UnmarshalTypeError
		if !errors.As(err, &te) || te.Field == "" {
			return w, Issues{{Path: prefix, Message: typeMessage("object", err)}}
		}
		path := join(prefix, te.Field)
		seen[path] = true
		issues = append(issues, Issue{
			Path:    path,
			Message: fmt.Sprintf("expected %s, got %s", te.Type.String(), te.Value),
		})
	}

	if err := validate.Struct(w); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return w, append(issues, Issue{Path: prefix, Message: err.Error()})
		}
		for _, fe := range verrs {
			path := join(prefix, fe.Field())
			if seen[path] {
				continue
			}
			seen[path] = true
			issues = append(issues, Issue{Path: path, Message: tagMessage(fe)})
		}
	}

	return w, issues
}

// exactKeys returns the members of obj whose keys are json tag names of W.
func exactKeys[W any](obj map[string]json.RawMessage) map[string]json.RawMessage {
	names := wireNames(reflect.TypeOf((*W)(nil)).Elem())
	out := make(map[string]json.RawMessage, len(names))
	for _, name := range names {
		if v, ok := obj[name]; ok {
			out[name] = v
		}
	}
	return out
}

var wireNameCache sync.Map // reflect.Type -> []string

func wireNames(t reflect.Type) []string {
	if v, ok := wireNameCache.Load(t); ok {
		return v.([]string)
	}
	var names []string
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				continue
			case "":
				name = f.Name
			}
			names = append(names, name)
		}
	}
	wireNameCache.Store(t, names)
	return names
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "utcdatetime":
		return "invalid datetime, expected " + utcDatetimeHint
	default:
		return "failed " + fe.Tag()
	}
}

func typeMessage(want string, err error) string {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return fmt.Sprintf("expected %s, got %s", want, te.Value)
	}
	return err.Error()
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
