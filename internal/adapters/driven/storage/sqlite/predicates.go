package sqlite

import (
	"database/sql/driver"
	"fmt"
	"strings"

	msqlite "modernc.org/sqlite"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// foldFunc lowercases with Go's Unicode rules. SQLite's own lower() and
// LIKE fold ASCII only, which would disagree with domain predicate matching.
const foldFunc = "ripple_lower"

func init() {
	if err := msqlite.RegisterDeterministicScalarFunction(foldFunc, 1, foldLower); err != nil {
		panic(fmt.Sprintf("sqlite: registering %s: %v", foldFunc, err))
	}
}

func foldLower(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// guarded yields the column when it holds valid JSON and an empty object
// otherwise, so absent or malformed facets never match and never raise.
func guarded(col string) string {
	return fmt.Sprintf("CASE WHEN json_valid(%s) THEN %s ELSE '{}' END", col, col)
}

// compilePredicates translates predicates into a WHERE clause and its
// arguments. User text only ever travels as a bound parameter.
func compilePredicates(preds []domain.Predicate) (string, []any, error) {
	if len(preds) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(preds))
	var args []any

	for _, p := range preds {
		switch p := p.(type) {
		case domain.FreeTextPredicate:
			clauses = append(clauses, "instr(raw_text, ?) > 0")
			args = append(args, p.Text)

		case domain.TopicPredicate:
			clauses = append(clauses, `EXISTS (
				SELECT 1 FROM json_each(`+guarded("structure_json")+`, '$.sections') s
				WHERE s.type = 'text' AND ripple_lower(s.value) LIKE ? ESCAPE '\')`)
			args = append(args, likePattern(p.Topic))

		case domain.MetaphorPredicate:
			clauses = append(clauses, `EXISTS (
				SELECT 1 FROM json_each(`+guarded("metaphors_json")+`, '$.pairs') p
				WHERE p.type = 'array' AND json_array_length(p.value) = 2
				AND (ripple_lower(json_extract(p.value, '$[0]')) LIKE ? ESCAPE '\'
					OR ripple_lower(json_extract(p.value, '$[1]')) LIKE ? ESCAPE '\'))`)
			pattern := likePattern(p.Term)
			args = append(args, pattern, pattern)

		case domain.HasStrategyPredicate:
			clauses = append(clauses, "json_type("+guarded("strategy_json")+") = 'array' AND json_array_length("+guarded("strategy_json")+") > 0")

		default:
			return "", nil, fmt.Errorf("%w: unsupported predicate %q", domain.ErrInvalidInput, p.Kind())
		}
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// likePattern builds a case-insensitive containment pattern with LIKE
// metacharacters escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}
