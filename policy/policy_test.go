package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_IsAllowed(t *testing.T) {
	testCases := []struct {
		description string
		policy      *Policy
		node        string
		expect      bool
	}{
		{
			description: "nil policy allows everything",
			policy:      nil,
			node:        "validate",
			expect:      true,
		},
		{
			description: "deny mode blocks everything",
			policy:      &Policy{Mode: ModeDeny},
			node:        "validate",
			expect:      false,
		},
		{
			description: "block list has priority",
			policy:      &Policy{AllowList: []string{"validate"}, BlockList: []string{"Validate"}},
			node:        "validate",
			expect:      false,
		},
		{
			description: "empty allow list admits all",
			policy:      &Policy{},
			node:        "anything",
			expect:      true,
		},
		{
			description: "allow list is exclusive",
			policy:      &Policy{AllowList: []string{"price"}},
			node:        "validate",
			expect:      false,
		},
		{
			description: "allow list match is case-insensitive",
			policy:      &Policy{AllowList: []string{"Price"}},
			node:        "price",
			expect:      true,
		},
	}
	for _, testCase := range testCases {
		actual := testCase.policy.IsAllowed(testCase.node)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestPolicy_ContextRoundTrip(t *testing.T) {
	p := &Policy{BlockList: []string{"audit"}}
	ctx := WithPolicy(context.Background(), p)
	assert.Same(t, p, FromContext(ctx))
	assert.Nil(t, FromContext(context.Background()))
}

func TestPolicy_ConfigRoundTrip(t *testing.T) {
	p := &Policy{Mode: ModeRun, AllowList: []string{"a"}, BlockList: []string{"b"}}
	restored := FromConfig(ToConfig(p))
	assert.Equal(t, p, restored)
	assert.Nil(t, ToConfig(nil))
	assert.Nil(t, FromConfig(nil))
}
