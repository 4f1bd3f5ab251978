package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReferenceGraph_TerminalStatuses verifies that terminal statuses have
// no outgoing edges.
func TestReferenceGraph_TerminalStatuses(t *testing.T) {
	g := ReferenceGraph()

	assert.Empty(t, g.TransitionsFrom(StatusCancelled))
	assert.Empty(t, g.TransitionsFrom(StatusReturned))
}

// TestReferenceGraph_EdgeMembership verifies legality for configured and
// unconfigured pairs.
func TestReferenceGraph_EdgeMembership(t *testing.T) {
	g := ReferenceGraph()

	tests := []struct {
		from  StatusID
		to    StatusID
		legal bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPacked, false},
		{StatusAccepted, StatusPacked, true},
		{StatusPacked, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusDeliveryFailed, true},
		{StatusDelivered, StatusReturned, true},
		{StatusDeliveryFailed, StatusReturned, true},
		{StatusCancelled, StatusPending, false},
		{StatusReturned, StatusPending, false},
		{StatusDelivered, StatusShipped, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.legal, g.IsLegalTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

// TestReferenceGraph_SingleDefault verifies exactly one status is the
// default, and that it is PENDING.
func TestReferenceGraph_SingleDefault(t *testing.T) {
	g := ReferenceGraph()

	defaults := 0
	for _, s := range g.Statuses() {
		if s.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.Equal(t, StatusPending, g.DefaultStatus().ID)
}

// TestTransitionsFrom_OrderStable verifies that repeated calls return the
// same ordered sequence and that callers cannot mutate the graph.
func TestTransitionsFrom_OrderStable(t *testing.T) {
	g := ReferenceGraph()

	first := g.TransitionsFrom(StatusPending)
	second := g.TransitionsFrom(StatusPending)
	require.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, StatusAccepted, first[0].To)
	assert.Equal(t, StatusCancelled, first[1].To)

	first[0].To = StatusReturned
	assert.Equal(t, StatusAccepted, g.TransitionsFrom(StatusPending)[0].To)
}

// TestApply_LegalTransition verifies the returned order carries the new
// status and its available transitions.
func TestApply_LegalTransition(t *testing.T) {
	g := ReferenceGraph()
	order := Order{ID: "o-1", StatusID: StatusPending}

	updated, err := g.Apply(order, StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, updated.StatusID)
	assert.Equal(t, g.TransitionsFrom(StatusAccepted), updated.AvailableTransitions)

	// The input value is untouched.
	assert.Equal(t, StatusPending, order.StatusID)
}

// TestApply_IllegalTransition verifies the typed error and that the order
// is returned unchanged.
func TestApply_IllegalTransition(t *testing.T) {
	g := ReferenceGraph()
	order := Order{ID: "o-1", StatusID: StatusPending}

	_, err := g.Apply(order, StatusPacked)
	require.Error(t, err)

	var illegal *IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, StatusPending, illegal.From)
	assert.Equal(t, StatusPacked, illegal.To)
}

// TestNewTransitionGraph_Validation covers the configuration invariants.
func TestNewTransitionGraph_Validation(t *testing.T) {
	statuses := []OrderStatus{
		{ID: "A", IsDefault: true},
		{ID: "B"},
	}

	t.Run("SelfLoop", func(t *testing.T) {
		_, err := NewTransitionGraph(statuses, []TransitionEdge{{From: "A", To: "A"}})
		assert.ErrorIs(t, err, ErrSelfLoop)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		_, err := NewTransitionGraph(statuses, []TransitionEdge{{From: "A", To: "C"}})
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})

	t.Run("NoDefault", func(t *testing.T) {
		_, err := NewTransitionGraph([]OrderStatus{{ID: "A"}}, nil)
		assert.ErrorIs(t, err, ErrNoDefaultStatus)
	})

	t.Run("TwoDefaults", func(t *testing.T) {
		_, err := NewTransitionGraph([]OrderStatus{
			{ID: "A", IsDefault: true},
			{ID: "B", IsDefault: true},
		}, nil)
		assert.ErrorIs(t, err, ErrNoDefaultStatus)
	})

	t.Run("DuplicateStatus", func(t *testing.T) {
		_, err := NewTransitionGraph([]OrderStatus{
			{ID: "A", IsDefault: true},
			{ID: "A"},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("TotalMapping", func(t *testing.T) {
		g, err := NewTransitionGraph(statuses, nil)
		require.NoError(t, err)
		// Statuses without configured edges still resolve, as terminals.
		assert.Empty(t, g.TransitionsFrom("B"))
	})
}

// TestNewTransitionGraphFromGroups verifies building from the backend's
// grouped wire shape, including edges that omit the redundant from field.
func TestNewTransitionGraphFromGroups(t *testing.T) {
	statuses := []OrderStatus{
		{ID: "A", IsDefault: true},
		{ID: "B"},
		{ID: "C"},
	}
	groups := []TransitionGroup{
		{FromStatusID: "A", Transitions: []TransitionEdge{
			{To: "B", Label: "go b"},
			{From: "A", To: "C", Label: "go c"},
		}},
		{FromStatusID: "B", Transitions: nil},
	}

	g, err := NewTransitionGraphFromGroups(statuses, groups)
	require.NoError(t, err)

	edges := g.TransitionsFrom("A")
	require.Len(t, edges, 2)
	assert.Equal(t, StatusID("B"), edges[0].To)
	assert.Equal(t, StatusID("A"), edges[0].From)
	assert.Equal(t, StatusID("C"), edges[1].To)
	assert.True(t, g.IsLegalTransition("A", "C"))
	assert.False(t, g.IsLegalTransition("B", "A"))
}

// TestGroups_RoundTrip verifies the graph serializes back to the grouped
// shape it can be rebuilt from.
func TestGroups_RoundTrip(t *testing.T) {
	g := ReferenceGraph()

	rebuilt, err := NewTransitionGraphFromGroups(g.Statuses(), g.Groups())
	require.NoError(t, err)

	for _, s := range g.Statuses() {
		assert.Equal(t, g.TransitionsFrom(s.ID), rebuilt.TransitionsFrom(s.ID), string(s.ID))
	}
}
