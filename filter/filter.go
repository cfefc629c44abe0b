// Package filter provides client-side expression filtering of content
// listings using the expr language.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/makuwro/makuwro-go/makuwro"
)

// Filter is a compiled content filter expression.
type Filter struct {
	program *vm.Program
	expr    string
}

// helperEnv holds the static helper functions available in expressions.
func helperEnv() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Compile compiles a filter expression.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate reports whether the filter matches a content item. Evaluation
// errors skip the item rather than failing the listing.
func (f *Filter) Evaluate(item makuwro.Item) bool {
	base := item.ContentBase()

	env := helperEnv()
	env["ID"] = base.ID
	env["Slug"] = base.Slug
	env["Description"] = base.Description
	if base.Owner != nil {
		env["Owner"] = base.Owner.Username
	} else {
		env["Owner"] = ""
	}

	switch v := item.(type) {
	case *makuwro.BlogPost:
		env["Title"] = v.Title
	case *makuwro.Story:
		env["Title"] = v.Title
	case *makuwro.Character:
		env["Name"] = v.Name
	case *makuwro.Comment:
		env["Text"] = v.Text
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	matched, ok := result.(bool)
	return ok && matched
}

// Apply returns the items matching the filter.
func (f *Filter) Apply(items []makuwro.Item) []makuwro.Item {
	matched := make([]makuwro.Item, 0, len(items))
	for _, item := range items {
		if f.Evaluate(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expr
}
