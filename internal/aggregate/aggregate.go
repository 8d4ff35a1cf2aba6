// Package aggregate groups enriched launches and counts them. It performs no I/O.
package aggregate

import "launchstats/internal/models"

// ByRocketAndYear counts launches per rocket name and UTC calendar year.
// Launches are expected to carry RocketName already.
func ByRocketAndYear(launches []models.Launch) models.LaunchesByYear {
	result := make(models.LaunchesByYear)
	for i := range launches {
		l := &launches[i]
		years, ok := result[l.RocketName]
		if !ok {
			years = make(map[int]int64)
			result[l.RocketName] = years
		}
		years[l.Year()]++
	}
	return result
}

// ByRocketAndSite counts launches per rocket name and launch pad name.
// Launches are expected to carry RocketName and LaunchPadName already.
func ByRocketAndSite(launches []models.Launch) models.LaunchesBySite {
	result := make(models.LaunchesBySite)
	for i := range launches {
		l := &launches[i]
		sites, ok := result[l.RocketName]
		if !ok {
			sites = make(map[string]int64)
			result[l.RocketName] = sites
		}
		sites[l.LaunchPadName]++
	}
	return result
}
