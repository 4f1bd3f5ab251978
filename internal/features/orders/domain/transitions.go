package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDefaultStatus is returned when the configuration does not mark
	// exactly one status as the default.
	ErrNoDefaultStatus = errors.New("configuration must mark exactly one default status")
	// ErrUnknownStatus is returned when an edge references a status that is
	// not part of the configuration.
	ErrUnknownStatus = errors.New("transition references unknown status")
	// ErrSelfLoop is returned when an edge starts and ends on the same status.
	ErrSelfLoop = errors.New("transition cannot start and end on the same status")
)

// IllegalTransitionError reports an attempt to move an order along an edge
// that does not exist in the transition graph.
type IllegalTransitionError struct {
	From StatusID
	To   StatusID
}

// Error implements the error interface.
func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
}

// TransitionEdge is a permitted move between two order statuses.
type TransitionEdge struct {
	// From is the status the order leaves.
	From StatusID `json:"fromStatusId"`
	// To is the status the order enters.
	To StatusID `json:"toStatusId"`
	// Label is the staff-facing action name, e.g. "Accept order".
	Label string `json:"label"`
	// ScanningRequired forces a barcode scan before the move is confirmed.
	ScanningRequired bool `json:"isScanningRequired"`
}

// TransitionGroup is the wire shape of the backend's transition listing:
// all outgoing edges of one status.
type TransitionGroup struct {
	// FromStatusID is the shared source status of the group.
	FromStatusID StatusID `json:"fromStatusId"`
	// Transitions are the outgoing edges in display order.
	Transitions []TransitionEdge `json:"transitions"`
}

// TransitionGraph is the order lifecycle: a directed graph over the finite
// set of configured statuses, stored as an adjacency map from status to its
// ordered outgoing edges (insertion order is display order).
//
// The graph is advisory: it validates moves before the backend is called and
// the backend remains the final authority. It performs no I/O and no
// mutation of its own.
type TransitionGraph struct {
	statuses map[StatusID]OrderStatus
	order    []StatusID
	edges    map[StatusID][]TransitionEdge
	def      StatusID
}

// NewTransitionGraph builds a graph from status configuration and edges.
// Every status gets an adjacency entry, possibly empty, so the mapping is
// total; statuses without outgoing edges are terminal.
func NewTransitionGraph(statuses []OrderStatus, edges []TransitionEdge) (*TransitionGraph, error) {
	g := &TransitionGraph{
		statuses: make(map[StatusID]OrderStatus, len(statuses)),
		order:    make([]StatusID, 0, len(statuses)),
		edges:    make(map[StatusID][]TransitionEdge, len(statuses)),
	}

	for _, s := range statuses {
		if _, dup := g.statuses[s.ID]; dup {
			return nil, fmt.Errorf("duplicate status %s", s.ID)
		}
		g.statuses[s.ID] = s
		g.order = append(g.order, s.ID)
		g.edges[s.ID] = nil
		if s.IsDefault {
			if g.def != "" {
				return nil, ErrNoDefaultStatus
			}
			g.def = s.ID
		}
	}
	if g.def == "" {
		return nil, ErrNoDefaultStatus
	}

	for _, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, e.From)
		}
		if _, ok := g.statuses[e.From]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, e.From)
		}
		if _, ok := g.statuses[e.To]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, e.To)
		}
		g.edges[e.From] = append(g.edges[e.From], e)
	}

	return g, nil
}

// NewTransitionGraphFromGroups builds a graph from the backend's grouped
// transition listing.
func NewTransitionGraphFromGroups(statuses []OrderStatus, groups []TransitionGroup) (*TransitionGraph, error) {
	var edges []TransitionEdge
	for _, group := range groups {
		for _, e := range group.Transitions {
			if e.From == "" {
				e.From = group.FromStatusID
			}
			edges = append(edges, e)
		}
	}
	return NewTransitionGraph(statuses, edges)
}

// ReferenceGraph returns the built-in lifecycle used at boot, before the
// backend's authoritative configuration has been synced.
func ReferenceGraph() *TransitionGraph {
	g, err := NewTransitionGraph(ReferenceStatuses(), []TransitionEdge{
		{From: StatusPending, To: StatusAccepted, Label: "Accept order"},
		{From: StatusPending, To: StatusCancelled, Label: "Cancel order"},
		{From: StatusAccepted, To: StatusPacked, Label: "Mark as packed"},
		{From: StatusAccepted, To: StatusCancelled, Label: "Cancel order"},
		{From: StatusPacked, To: StatusShipped, Label: "Hand to courier", ScanningRequired: true},
		{From: StatusPacked, To: StatusCancelled, Label: "Cancel order"},
		{From: StatusShipped, To: StatusDelivered, Label: "Mark delivered"},
		{From: StatusShipped, To: StatusDeliveryFailed, Label: "Delivery failed"},
		{From: StatusDelivered, To: StatusReturned, Label: "Process return", ScanningRequired: true},
		{From: StatusDeliveryFailed, To: StatusReturned, Label: "Return to warehouse", ScanningRequired: true},
	})
	if err != nil {
		panic(err)
	}
	return g
}

// Statuses returns the configured statuses in configuration order.
func (g *TransitionGraph) Statuses() []OrderStatus {
	out := make([]OrderStatus, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.statuses[id])
	}
	return out
}

// Status returns the status configuration for an identifier.
func (g *TransitionGraph) Status(id StatusID) (OrderStatus, bool) {
	s, ok := g.statuses[id]
	return s, ok
}

// DefaultStatus returns the unique status every new order starts in.
func (g *TransitionGraph) DefaultStatus() OrderStatus {
	return g.statuses[g.def]
}

// TransitionsFrom returns the configured outgoing edges for a status in
// display order. Terminal statuses yield an empty slice. The result is a
// copy; callers may not mutate the graph through it.
func (g *TransitionGraph) TransitionsFrom(from StatusID) []TransitionEdge {
	edges := g.edges[from]
	out := make([]TransitionEdge, len(edges))
	copy(out, edges)
	return out
}

// IsLegalTransition reports whether the edge from -> to is configured.
func (g *TransitionGraph) IsLegalTransition(from, to StatusID) bool {
	for _, e := range g.edges[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

// Groups returns the whole graph as the backend's grouped wire shape, in
// configuration order. Terminal statuses are included with empty groups.
func (g *TransitionGraph) Groups() []TransitionGroup {
	out := make([]TransitionGroup, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, TransitionGroup{
			FromStatusID: id,
			Transitions:  g.TransitionsFrom(id),
		})
	}
	return out
}

// Apply validates the move of an order to a new status and returns the
// updated order value. It fails with *IllegalTransitionError when the edge
// is not configured, leaving the input untouched. Persistence is the
// caller's job; the graph only guards the action.
func (g *TransitionGraph) Apply(order Order, to StatusID) (Order, error) {
	if !g.IsLegalTransition(order.StatusID, to) {
		return order, &IllegalTransitionError{From: order.StatusID, To: to}
	}
	order.StatusID = to
	order.AvailableTransitions = g.TransitionsFrom(to)
	return order, nil
}
