package repository

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates conjunctive predicates with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a predicate; "?" in cond is replaced with the next placeholder.
func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, strings.Replace(cond, "?", fmt.Sprintf("$%d", len(b.args)), 1))
}

// addRaw appends a predicate without an argument.
func (b *whereBuilder) addRaw(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *whereBuilder) sql() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func direction(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
