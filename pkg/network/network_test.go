package network_test

import (
	"testing"

	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func def(label, left, right string) domain.Definition {
	return domain.Definition{
		Label: domain.MustLabel(label),
		Node:  domain.Node{Left: domain.MustLabel(left), Right: domain.MustLabel(right)},
	}
}

func TestBuild(t *testing.T) {
	n, err := network.Build([]domain.Definition{
		def("CCC", "ZZZ", "GGG"),
		def("AAA", "BBB", "CCC"),
		def("BBB", "BBB", "BBB"),
		def("GGG", "GGG", "GGG"),
		def("ZZZ", "ZZZ", "ZZZ"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, n.Len())
	assert.Equal(t, []domain.Label{
		domain.MustLabel("AAA"),
		domain.MustLabel("BBB"),
		domain.MustLabel("CCC"),
		domain.MustLabel("GGG"),
		domain.MustLabel("ZZZ"),
	}, n.Labels())

	node, ok := n.Lookup(domain.MustLabel("AAA"))
	require.True(t, ok)
	assert.Equal(t, domain.MustLabel("BBB"), node.Left)

	assert.Equal(t, domain.MustLabel("CCC"), n.Next(domain.MustLabel("AAA"), domain.Right))
	assert.Equal(t, domain.MustLabel("ZZZ"), n.Next(domain.MustLabel("CCC"), domain.Left))
	assert.False(t, n.Contains(domain.MustLabel("QQQ")))

	assert.Equal(t, []domain.Label{domain.MustLabel("ZZZ")}, n.Select(domain.Label.IsAccepting))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		defs []domain.Definition
		want error
	}{
		{
			name: "Empty",
			defs: nil,
			want: domain.ErrMalformedGraph,
		},
		{
			name: "Undeclared Target",
			defs: []domain.Definition{def("AAA", "BBB", "AAA")},
			want: domain.ErrMalformedGraph,
		},
		{
			name: "Duplicate",
			defs: []domain.Definition{def("AAA", "AAA", "AAA"), def("AAA", "AAA", "AAA")},
			want: domain.ErrDuplicateNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := network.Build(tt.defs)
			assert.Nil(t, n)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_MalformedDetails(t *testing.T) {
	_, err := network.Build([]domain.Definition{
		def("AAA", "AAA", "AAA"),
		def("BBB", "AAA", "XYZ"),
	})

	var mg *domain.MalformedGraphError
	require.ErrorAs(t, err, &mg)
	assert.Equal(t, domain.MustLabel("BBB"), mg.Node)
	assert.Equal(t, domain.MustLabel("XYZ"), mg.Target)
}

func TestBuild_SelfLoopAllowed(t *testing.T) {
	n, err := network.Build([]domain.Definition{def("AAA", "AAA", "AAA")})
	require.NoError(t, err)
	assert.Equal(t, domain.MustLabel("AAA"), n.Next(domain.MustLabel("AAA"), domain.Left))
}

func TestDefinitionsRoundTrip(t *testing.T) {
	defs := []domain.Definition{def("AAA", "BBB", "BBB"), def("BBB", "AAA", "AAA")}
	n, err := network.Build(defs)
	require.NoError(t, err)
	assert.Equal(t, defs, n.Definitions())
}
