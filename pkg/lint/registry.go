package lint

import "sync"

// globalRegistry is the single global registry for all style rules.
var globalRegistry = &Registry{
	byID: make(map[string]SourceRule),
}

// Registry stores registered style rules for discovery. Registration
// order is preserved: within a category, rules run and report in the
// order they were registered.
type Registry struct {
	mu    sync.RWMutex
	rules []SourceRule
	byID  map[string]SourceRule
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages. Re-registering an
// ID replaces the previous rule in place.
func Register(rule SourceRule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	if _, ok := globalRegistry.byID[rule.ID()]; ok {
		for i, r := range globalRegistry.rules {
			if r.ID() == rule.ID() {
				globalRegistry.rules[i] = rule
				break
			}
		}
	} else {
		globalRegistry.rules = append(globalRegistry.rules, rule)
	}
	globalRegistry.byID[rule.ID()] = rule
}

// GetAllRules returns all registered rules in registration order.
func GetAllRules() []SourceRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]SourceRule, len(globalRegistry.rules))
	copy(rules, globalRegistry.rules)
	return rules
}

// GetRuleByID returns a rule by its ID.
func GetRuleByID(id string) (SourceRule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.byID[id]
	return rule, ok
}

// GetRulesByGroup returns all rules in a category, in registration order.
func GetRulesByGroup(group string) []SourceRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []SourceRule
	for _, rule := range globalRegistry.rules {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// AllRules returns metadata for all registered rules.
func AllRules() []RuleInfo {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	infos := make([]RuleInfo, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}
