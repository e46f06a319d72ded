package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/satsearch-go/tools/dashgen/rules"
)

func TestPrometheusRuleResources(t *testing.T) {
	t.Parallel()

	for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
		t.Run(cr.Metadata.Name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
			assert.Equal(t, "PrometheusRule", cr.Kind)
			assert.Equal(t, "system-rules-prometheus", cr.Metadata.Labels["prometheus"])
			require.Len(t, cr.Spec.Groups, 1)
			assert.NotEmpty(t, cr.Spec.Groups[0].Rules)
		})
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	recording := rules.RecordingRules()
	alerts := rules.AlertRules()

	rf := rules.Flatten(recording, alerts)
	require.Len(t, rf.Groups, 2)
	assert.Equal(t, recording.Spec.Groups[0].Name, rf.Groups[0].Name)
	assert.Equal(t, alerts.Spec.Groups[0].Name, rf.Groups[1].Name)

	assert.Empty(t, rules.Flatten().Groups)
}
