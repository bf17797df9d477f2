package models

// Holiday suspends every session falling on any of its weeks.
type Holiday struct {
	Name  string `json:"name"`
	Weeks []int  `json:"weeks"`
}

// HolidayWeekSet flattens a holiday list into the set of suspended weeks.
func HolidayWeekSet(holidays []Holiday) map[int]struct{} {
	set := make(map[int]struct{})
	for _, h := range holidays {
		for _, w := range h.Weeks {
			set[w] = struct{}{}
		}
	}
	return set
}
