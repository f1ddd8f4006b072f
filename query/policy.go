package query

import (
	"fmt"
	"strings"

	parseerrors "github.com/jmgilman/go/parse/errors"
)

// CachePolicy selects where a query sources its results and in what order.
// The numeric tags are stable and safe to persist.
type CachePolicy uint8

const (
	// IgnoreCache queries the network and neither reads nor writes the cache.
	// It is the default policy.
	IgnoreCache CachePolicy = 0
	// CacheOnly serves from the cache and never touches the network.
	CacheOnly CachePolicy = 1
	// NetworkOnly queries the network and saves the result to the cache.
	NetworkOnly CachePolicy = 2
	// CacheElseNetwork serves from the cache, falling back to the network on a miss.
	CacheElseNetwork CachePolicy = 3
	// NetworkElseCache queries the network, falling back to the cache when the
	// network request fails with a retryable error.
	NetworkElseCache CachePolicy = 4
	// CacheThenNetwork delivers the cached result first and the network result
	// second. It produces two results and is only usable where a result
	// callback can be invoked more than once.
	CacheThenNetwork CachePolicy = 5
)

var policyNames = [...]string{
	IgnoreCache:      "IgnoreCache",
	CacheOnly:        "CacheOnly",
	NetworkOnly:      "NetworkOnly",
	CacheElseNetwork: "CacheElseNetwork",
	NetworkElseCache: "NetworkElseCache",
	CacheThenNetwork: "CacheThenNetwork",
}

// Policies returns every cache policy in tag order.
func Policies() []CachePolicy {
	return []CachePolicy{IgnoreCache, CacheOnly, NetworkOnly, CacheElseNetwork, NetworkElseCache, CacheThenNetwork}
}

// PolicyFromTag decodes a persisted tag.
// Returns a CodeInvalidQuery error for tags outside the closed set.
func PolicyFromTag(tag uint8) (CachePolicy, error) {
	p := CachePolicy(tag)
	if !p.IsValid() {
		return 0, parseerrors.Newf(parseerrors.CodeInvalidQuery, "unknown cache policy tag %d", tag)
	}
	return p, nil
}

// ParseCachePolicy parses a policy name. Matching ignores case, underscores
// and hyphens, so "CacheElseNetwork", "cache_else_network" and
// "cache-else-network" are equivalent.
func ParseCachePolicy(name string) (CachePolicy, error) {
	normalized := normalizePolicyName(name)
	for _, p := range Policies() {
		if normalizePolicyName(policyNames[p]) == normalized {
			return p, nil
		}
	}
	return 0, parseerrors.Newf(parseerrors.CodeInvalidQuery, "unknown cache policy %q", name)
}

func normalizePolicyName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "").Replace(name)
}

// Tag returns the stable numeric tag of the policy.
func (p CachePolicy) Tag() uint8 {
	return uint8(p)
}

// IsValid reports whether p is one of the defined policies.
func (p CachePolicy) IsValid() bool {
	return p <= CacheThenNetwork
}

// String returns the policy name, or "CachePolicy(n)" for unknown tags.
func (p CachePolicy) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("CachePolicy(%d)", uint8(p))
	}
	return policyNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p CachePolicy) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, parseerrors.Newf(parseerrors.CodeInvalidQuery, "unknown cache policy tag %d", uint8(p))
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *CachePolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseCachePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ResultCount returns how many results a query with this policy delivers.
func (p CachePolicy) ResultCount() int {
	if p == CacheThenNetwork {
		return 2
	}
	return 1
}

// SupportsSingleResult reports whether the policy can be used where exactly
// one result is expected, such as a synchronous find.
func (p CachePolicy) SupportsSingleResult() bool {
	return p.IsValid() && p.ResultCount() == 1
}

// ReadsCache reports whether the policy may serve results from the cache.
func (p CachePolicy) ReadsCache() bool {
	switch p {
	case CacheOnly, CacheElseNetwork, NetworkElseCache, CacheThenNetwork:
		return true
	default:
		return false
	}
}

// ReadsNetwork reports whether the policy may query the network.
func (p CachePolicy) ReadsNetwork() bool {
	switch p {
	case IgnoreCache, NetworkOnly, CacheElseNetwork, NetworkElseCache, CacheThenNetwork:
		return true
	default:
		return false
	}
}

// SavesToCache reports whether network results are written to the cache.
func (p CachePolicy) SavesToCache() bool {
	switch p {
	case NetworkOnly, CacheElseNetwork, NetworkElseCache, CacheThenNetwork:
		return true
	default:
		return false
	}
}
