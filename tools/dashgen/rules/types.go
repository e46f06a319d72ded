// Package rules builds the satsearch-mirror recording and alert rules, both
// as Prometheus Operator custom resources and as a plain rules file.
package rules

import "slices"

const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"

	// selectorLabel is what the cluster's Prometheus ruleSelector matches.
	selectorLabel = "system-rules-prometheus"
)

// PrometheusRule is a monitoring.coreos.com/v1 PrometheusRule resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata is the subset of object metadata dashgen sets.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec wraps the rule groups of a resource.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated at the Prometheus global interval.
type RuleGroup struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record or Alert.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// RuleFile is the rule_files format loaded by Prometheus without the
// operator.
type RuleFile struct {
	Groups []RuleGroup `yaml:"groups"`
}

func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{"prometheus": selectorLabel},
		},
		Spec: PrometheusRuleSpec{Groups: groups},
	}
}

// Flatten merges the groups of crs, in order, into one plain rules file.
func Flatten(crs ...PrometheusRule) RuleFile {
	groups := make([][]RuleGroup, len(crs))
	for i := range crs {
		groups[i] = crs[i].Spec.Groups
	}
	return RuleFile{Groups: slices.Concat(groups...)}
}
