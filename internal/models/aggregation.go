package models

// LaunchesByYear maps rocket name -> UTC year -> launch count.
type LaunchesByYear map[string]map[int]int64

// LaunchesBySite maps rocket name -> launch pad name -> launch count.
type LaunchesBySite map[string]map[string]int64

// Total returns the sum of all counts.
func (m LaunchesByYear) Total() int64 {
	var n int64
	for _, years := range m {
		for _, c := range years {
			n += c
		}
	}
	return n
}

// Total returns the sum of all counts.
func (m LaunchesBySite) Total() int64 {
	var n int64
	for _, sites := range m {
		for _, c := range sites {
			n += c
		}
	}
	return n
}
