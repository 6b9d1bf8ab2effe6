package browse

import "tech-innovations-be/internal/entity"

// State holds one browsing session: the full record set fetched once, the
// three filter/sort inputs, and the derived view. Every input change
// recomputes the view synchronously from the full set, so the view is never
// partially stale. State is single-session and not safe for concurrent use;
// each recomputation finishes before the next input can arrive.
type State struct {
	all      []*entity.Innovation
	query    string
	category string
	sortKey  SortKey
	view     []*entity.Innovation
	err      error

	// OnChange is the renderer contract: called with the new view after
	// every recomputation, if set.
	OnChange func(view []*entity.Innovation)
}

// NewState starts a session over the fetched record set, with no filters and
// the default rating ordering.
func NewState(all []*entity.Innovation) *State {
	s := &State{
		all:     all,
		sortKey: DefaultSortKey,
	}
	s.view = Sort(s.all, s.sortKey)
	return s
}

// NewFailedState models a failed initial fetch: a terminal error display
// with an empty set and no automatic retry.
func NewFailedState(err error) *State {
	s := NewState(nil)
	s.err = err
	return s
}

func (s *State) Err() error {
	return s.err
}

func (s *State) View() []*entity.Innovation {
	return s.view
}

func (s *State) Query() string {
	return s.query
}

func (s *State) Category() string {
	return s.category
}

func (s *State) SortKey() SortKey {
	return s.sortKey
}

func (s *State) SetQuery(query string) {
	s.query = query
	s.recompute()
}

func (s *State) SetCategory(category string) {
	s.category = category
	s.recompute()
}

func (s *State) SetSortKey(raw string) {
	s.sortKey = ParseSortKey(raw)
	s.recompute()
}

// ClearFilters resets all inputs to their defaults and recomputes the view
// as the full set sorted by rating.
func (s *State) ClearFilters() {
	s.query = ""
	s.category = ""
	s.sortKey = DefaultSortKey
	s.recompute()
}

// ShowFeaturedOnly swaps the view for the featured subset without resorting
// and without touching the filter/sort inputs. It does not compose with the
// pipeline; the next input change recomputes from the full set as usual.
func (s *State) ShowFeaturedOnly() {
	s.view = Featured(s.all)
	s.notify()
}

func (s *State) recompute() {
	s.view = Sort(Filter(s.all, s.query, s.category), s.sortKey)
	s.notify()
}

func (s *State) notify() {
	if s.OnChange != nil {
		s.OnChange(s.view)
	}
}
