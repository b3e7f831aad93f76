package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulntriage/vulntriage/vulntriage/status"
)

func rules() Set {
	return NewSet(
		Parse(DenyCategory, "wordpress", "WordPress;;1"),
		Parse(DenyCategory, "joomla", "Joomla;;0"),
		Parse(AllowCategory, "own", "МойВендор;МойПродукт;ID-DA-123;0"),
		Parse(AllowCategory, "nginx", "F5;NGINX;ID-NGINX;1"),
		Parse(LinuxCategory, "kernel", "Linux;Kernel;ID-LNX-001;Linux Kernel"),
		Parse(LinuxCategory, "ubuntu", "Canonical;Ubuntu;;"),
		Parse(ConditionalCategory, "ios", "Cisco;IOS XE;0"),
		Parse(ConditionalCategory, "blank", ";IOS XE;1"),
	)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		priorityOnly bool
		expectedRule string
		expected     status.Decision
	}{
		{
			name:         "priority deny",
			description:  "WordPress Plugin Contact Form 7",
			priorityOnly: true,
			expectedRule: "wordpress",
			expected:     status.NewDeny(),
		},
		{
			name:         "case insensitive vendor and product",
			description:  "Продукт от мойвендор, название МОЙПРОДУКТ",
			expectedRule: "own",
			expected:     status.NewAllow("ID-DA-123"),
		},
		{
			name:         "vendor without product does not match",
			description:  "Продукт от МойВендор",
			expectedRule: "",
		},
		{
			name:         "linux rules are never priority",
			description:  "Linux - Kernel",
			priorityOnly: true,
			expectedRule: "",
		},
		{
			name:         "linux with target id",
			description:  "Linux - Kernel",
			expectedRule: "kernel",
			expected:     status.NewLinux("ID-LNX-001"),
		},
		{
			name:         "linux falls back to sentinel id",
			description:  "Canonical Ubuntu 22.04",
			expectedRule: "ubuntu",
			expected:     status.Decision{Status: status.Linux, ResolvedID: status.LinuxDefaultID},
		},
		{
			name:         "conditional",
			description:  "Cisco - IOS XE Software",
			expectedRule: "ios",
			expected:     status.NewConditional(),
		},
		{
			name:         "rule without vendor never matches",
			description:  "Some IOS XE Software",
			expectedRule: "",
		},
		{
			name:         "deny is evaluated before allow",
			description:  "Joomla bundled with F5 NGINX",
			expectedRule: "joomla",
			expected:     status.NewDeny(),
		},
		{
			name:         "priority only skips ordinary deny",
			description:  "Joomla bundled with F5 NGINX",
			priorityOnly: true,
			expectedRule: "nginx",
			expected:     status.NewAllow("ID-NGINX"),
		},
		{
			name:         "no match",
			description:  "Unknown exotic product",
			expectedRule: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := Evaluate(test.description, rules(), test.priorityOnly)
			if test.expectedRule == "" {
				assert.Nil(t, actual)
				return
			}
			require.NotNil(t, actual)
			assert.Equal(t, test.expectedRule, actual.Rule.Name)
			assert.Equal(t, test.expected, actual.Decision)
		})
	}
}

func TestEvaluate_emptySet(t *testing.T) {
	assert.Nil(t, Evaluate("WordPress", nil, false))
	assert.Nil(t, Evaluate("", rules(), false))
}
