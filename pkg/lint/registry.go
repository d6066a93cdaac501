package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/msglint/pkg/core"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]TreeRule),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]TreeRule // keyed by ID
}

// RegisterTreeRule adds a tree rule to the global registry.
// Call this from init() functions in rule packages.
func RegisterTreeRule(rule TreeRule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID()] = rule
}

// GetAllTreeRules returns all registered tree rules sorted by ID.
func GetAllTreeRules() []TreeRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]TreeRule, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetTreeRulesByRepresentation returns the rules that consume the given
// tree representation, sorted by ID.
func GetTreeRulesByRepresentation(representation string) []TreeRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []TreeRule
	for _, rule := range globalRegistry.rules {
		if rule.Representation() == representation {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// GetTreeRulesByGroup returns tree rules in a specific group, sorted by ID.
func GetTreeRulesByGroup(group string) []TreeRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []TreeRule
	for _, rule := range globalRegistry.rules {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// GetRuleByID returns a rule by its ID or by its name.
func GetRuleByID(id string) (TreeRule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	if rule, ok := globalRegistry.rules[id]; ok {
		return rule, true
	}
	for _, rule := range globalRegistry.rules {
		if rule.Name() == id {
			return rule, true
		}
	}
	return nil, false
}

// AllRules returns metadata for all registered rules sorted by ID.
func AllRules() []core.RuleInfo {
	rules := GetAllTreeRules()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]TreeRule)
}

func sortRules(rules []TreeRule) {
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID() < rules[j].ID()
	})
}
