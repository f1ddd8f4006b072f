package query

import (
	"regexp"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/jmgilman/go/parse/cache"
	parseerrors "github.com/jmgilman/go/parse/errors"
)

// canonicalJSON sorts map keys so equal queries encode identically.
var canonicalJSON = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	classNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	keyNamePattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	operatorPattern  = regexp.MustCompile(`^\$[A-Za-z][A-Za-z0-9_]*$`)
)

// systemClasses are the reserved classes whose names start with an underscore.
var systemClasses = map[string]bool{
	"_User":         true,
	"_Role":         true,
	"_Installation": true,
	"_Session":      true,
	"_Product":      true,
}

// Query describes a request for objects of one class.
type Query struct {
	// ClassName is the class being queried.
	ClassName string
	// Constraints maps key names, or top-level operators such as "$or", to
	// the values or operator maps they must match.
	Constraints map[string]any
	// Order lists sort keys. A leading "-" sorts descending.
	Order []string
	// Keys restricts the returned fields.
	Keys []string
	// Include lists pointer paths to fetch alongside the results.
	Include []string
	// Limit caps the number of results. Zero uses the server default.
	Limit int
	// Skip is the number of results to skip.
	Skip int
	// CachePolicy selects where results are sourced.
	CachePolicy CachePolicy
	// MaxCacheAge rejects cached results older than this. Zero accepts any age.
	MaxCacheAge time.Duration
}

// Option configures a Query.
type Option func(*Query)

// New creates a query on className.
func New(className string, opts ...Option) *Query {
	q := &Query{ClassName: className}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// WithConstraint requires key to match value.
func WithConstraint(key string, value any) Option {
	return func(q *Query) {
		if q.Constraints == nil {
			q.Constraints = make(map[string]any)
		}
		q.Constraints[key] = value
	}
}

// WithOrder appends sort keys.
func WithOrder(keys ...string) Option {
	return func(q *Query) {
		q.Order = append(q.Order, keys...)
	}
}

// WithKeys restricts the returned fields.
func WithKeys(keys ...string) Option {
	return func(q *Query) {
		q.Keys = append(q.Keys, keys...)
	}
}

// WithInclude fetches the objects behind the given pointer paths.
func WithInclude(paths ...string) Option {
	return func(q *Query) {
		q.Include = append(q.Include, paths...)
	}
}

// WithLimit caps the number of results.
func WithLimit(limit int) Option {
	return func(q *Query) {
		q.Limit = limit
	}
}

// WithSkip skips the first n results.
func WithSkip(n int) Option {
	return func(q *Query) {
		q.Skip = n
	}
}

// WithCachePolicy sets the cache policy.
func WithCachePolicy(policy CachePolicy) Option {
	return func(q *Query) {
		q.CachePolicy = policy
	}
}

// WithMaxCacheAge rejects cached results older than age.
func WithMaxCacheAge(age time.Duration) Option {
	return func(q *Query) {
		q.MaxCacheAge = age
	}
}

// Validate checks the query and returns the first problem found, tagged with
// the code the server would report for it.
func (q *Query) Validate() error {
	if !classNamePattern.MatchString(q.ClassName) && !systemClasses[q.ClassName] {
		return parseerrors.Newf(parseerrors.CodeInvalidClassName, "invalid class name %q", q.ClassName)
	}

	constraints, err := q.genericConstraints()
	if err != nil {
		return err
	}
	for key, value := range constraints {
		if !operatorPattern.MatchString(key) && !keyNamePattern.MatchString(key) {
			return parseerrors.Newf(parseerrors.CodeInvalidKeyName, "invalid key name %q", key)
		}
		if err := validateNested(value); err != nil {
			return parseerrors.WithContext(err, "key", key)
		}
	}

	for _, key := range q.Order {
		if !keyNamePattern.MatchString(strings.TrimPrefix(key, "-")) {
			return parseerrors.Newf(parseerrors.CodeInvalidKeyName, "invalid order key %q", key)
		}
	}
	for _, key := range q.Keys {
		if !keyNamePattern.MatchString(key) {
			return parseerrors.Newf(parseerrors.CodeInvalidKeyName, "invalid selected key %q", key)
		}
	}
	for _, path := range q.Include {
		for _, segment := range strings.Split(path, ".") {
			if !keyNamePattern.MatchString(segment) {
				return parseerrors.Newf(parseerrors.CodeInvalidKeyName, "invalid include path %q", path)
			}
		}
	}

	if q.Limit < 0 {
		return parseerrors.Newf(parseerrors.CodeInvalidQuery, "limit cannot be negative: %d", q.Limit)
	}
	if q.Skip < 0 {
		return parseerrors.Newf(parseerrors.CodeInvalidQuery, "skip cannot be negative: %d", q.Skip)
	}
	if !q.CachePolicy.IsValid() {
		return parseerrors.Newf(parseerrors.CodeInvalidQuery, "unknown cache policy tag %d", q.CachePolicy.Tag())
	}
	if q.MaxCacheAge < 0 {
		return parseerrors.Newf(parseerrors.CodeInvalidQuery, "max cache age cannot be negative: %s", q.MaxCacheAge)
	}

	return nil
}

// genericConstraints returns the constraints as they will be sent, decoded
// back into plain maps and slices so typed values are validated the same way.
func (q *Query) genericConstraints() (map[string]any, error) {
	if len(q.Constraints) == 0 {
		return nil, nil
	}
	encoded, err := canonicalJSON.Marshal(q.Constraints)
	if err != nil {
		return nil, parseerrors.Wrap(err, parseerrors.CodeInvalidJSON, "constraints are not JSON encodable")
	}
	var generic map[string]any
	if err := canonicalJSON.Unmarshal(encoded, &generic); err != nil {
		return nil, parseerrors.Wrap(err, parseerrors.CodeInvalidJSON, "constraints are not valid JSON")
	}
	return generic, nil
}

// validateNested checks keys inside nested constraint values. Keys starting
// with "$" are operators; any other "$" or a "." is rejected.
func validateNested(value any) error {
	switch v := value.(type) {
	case map[string]any:
		for key, nested := range v {
			name := key
			if operatorPattern.MatchString(key) {
				name = key[1:]
			}
			if strings.ContainsAny(name, ".$") {
				return parseerrors.Newf(parseerrors.CodeInvalidNestedKey, "invalid nested key %q", key)
			}
			if err := validateNested(nested); err != nil {
				return err
			}
		}
	case []any:
		for _, nested := range v {
			if err := validateNested(nested); err != nil {
				return err
			}
		}
	}
	return nil
}

// selector is the part of a query that determines its results.
type selector struct {
	ClassName   string         `json:"className"`
	Constraints map[string]any `json:"where,omitempty"`
	Order       []string       `json:"order,omitempty"`
	Keys        []string       `json:"keys,omitempty"`
	Include     []string       `json:"include,omitempty"`
	Limit       int            `json:"limit,omitempty"`
	Skip        int            `json:"skip,omitempty"`
}

// CacheKey derives the cache key of the query's results.
// The key covers everything that selects results and ignores the cache
// policy and max age, so the same results are shared across policies.
func (q *Query) CacheKey() (string, error) {
	encoded, err := canonicalJSON.Marshal(selector{
		ClassName:   q.ClassName,
		Constraints: q.Constraints,
		Order:       q.Order,
		Keys:        q.Keys,
		Include:     q.Include,
		Limit:       q.Limit,
		Skip:        q.Skip,
	})
	if err != nil {
		return "", parseerrors.Wrap(err, parseerrors.CodeInvalidJSON, "query is not JSON encodable")
	}
	return cache.Key([]byte("query"), encoded), nil
}

// Clone returns a deep copy of the query's slices and top-level constraint map.
func (q *Query) Clone() *Query {
	cp := *q
	if q.Constraints != nil {
		cp.Constraints = make(map[string]any, len(q.Constraints))
		for k, v := range q.Constraints {
			cp.Constraints[k] = v
		}
	}
	cp.Order = append([]string(nil), q.Order...)
	cp.Keys = append([]string(nil), q.Keys...)
	cp.Include = append([]string(nil), q.Include...)
	return &cp
}
