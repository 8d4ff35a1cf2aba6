package aggregate

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"launchstats/internal/models"
)

func enriched(rocket, pad, date string) models.Launch {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		panic(err)
	}
	return models.Launch{
		RocketID:      "id-" + rocket,
		LaunchPadID:   "id-" + pad,
		DateUTC:       t,
		RocketName:    rocket,
		LaunchPadName: pad,
	}
}

func TestByRocketAndYear(t *testing.T) {
	launches := []models.Launch{
		enriched("Falcon", "Site 1", "2024-05-01T12:00:00Z"),
		enriched("Apollo", "Site 2", "2023-01-21T05:47:26.853Z"),
		enriched("Apollo", "Site 2", "2022-01-21T05:47:26.853Z"),
	}

	got := ByRocketAndYear(launches)
	want := models.LaunchesByYear{
		"Falcon": {2024: 1},
		"Apollo": {2023: 1, 2022: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByRocketAndYear() = %v, want %v", got, want)
	}
}

func TestByRocketAndYear_UsesUTC(t *testing.T) {
	// 2023-01-01T01:00 in UTC+5 is still 2022 in UTC.
	loc := time.FixedZone("UTC+5", 5*60*60)
	l := models.Launch{
		RocketName: "Falcon",
		DateUTC:    time.Date(2023, 1, 1, 1, 0, 0, 0, loc),
	}

	got := ByRocketAndYear([]models.Launch{l})
	if got["Falcon"][2022] != 1 {
		t.Errorf("ByRocketAndYear() = %v, want Falcon counted in 2022", got)
	}

	ts, _ := time.Parse(time.RFC3339, "2023-01-21T05:47:26.853Z")
	got = ByRocketAndYear([]models.Launch{{RocketName: "Falcon", DateUTC: ts.In(time.FixedZone("UTC-12", -12*60*60))}})
	if got["Falcon"][2023] != 1 {
		t.Errorf("ByRocketAndYear() = %v, want Falcon counted in 2023", got)
	}
}

func TestByRocketAndSite(t *testing.T) {
	launches := []models.Launch{
		enriched("Falcon", "Site 1", "2024-05-01T12:00:00Z"),
		enriched("Apollo", "Site 2", "2023-01-21T05:47:26.853Z"),
		enriched("Apollo", "Site 2", "2022-01-21T05:47:26.853Z"),
	}

	got := ByRocketAndSite(launches)
	want := models.LaunchesBySite{
		"Falcon": {"Site 1": 1},
		"Apollo": {"Site 2": 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByRocketAndSite() = %v, want %v", got, want)
	}
}

func TestMergesByName(t *testing.T) {
	// Different rocket ids resolving to the same name share one bucket.
	a := enriched("Falcon", "Site 1", "2020-01-01T00:00:00Z")
	a.RocketID = "rocket1"
	b := enriched("Falcon", "Site 1", "2020-06-01T00:00:00Z")
	b.RocketID = "rocket9"

	byYear := ByRocketAndYear([]models.Launch{a, b})
	if len(byYear) != 1 || byYear["Falcon"][2020] != 2 {
		t.Errorf("ByRocketAndYear() = %v, want {Falcon: {2020: 2}}", byYear)
	}

	bySite := ByRocketAndSite([]models.Launch{a, b})
	if len(bySite) != 1 || bySite["Falcon"]["Site 1"] != 2 {
		t.Errorf("ByRocketAndSite() = %v, want {Falcon: {Site 1: 2}}", bySite)
	}
}

func TestSentinelKeys(t *testing.T) {
	l := enriched(models.RocketNameNA, models.LaunchPadNameNA, "2021-01-01T00:00:00Z")

	if ByRocketAndYear([]models.Launch{l})[models.RocketNameNA][2021] != 1 {
		t.Error("by-year result missing ROCKET_NAME_NA bucket")
	}
	if ByRocketAndSite([]models.Launch{l})[models.RocketNameNA][models.LaunchPadNameNA] != 1 {
		t.Error("by-site result missing ROCKET_NAME_NA/LAUNCHPAD_NAME_NA bucket")
	}
}

func TestEmpty(t *testing.T) {
	if got := ByRocketAndYear(nil); len(got) != 0 {
		t.Errorf("ByRocketAndYear(nil) = %v, want empty", got)
	}
	if got := ByRocketAndSite([]models.Launch{}); len(got) != 0 {
		t.Errorf("ByRocketAndSite(empty) = %v, want empty", got)
	}
}

func TestCountsSumToLaunches(t *testing.T) {
	rockets := []string{"Falcon 1", "Falcon 9", "Falcon Heavy", models.RocketNameNA}
	pads := []string{"Site 1", "Site 2", models.LaunchPadNameNA}
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 200; n += 37 {
		launches := make([]models.Launch, n)
		for i := range launches {
			launches[i] = models.Launch{
				RocketName:    rockets[rng.Intn(len(rockets))],
				LaunchPadName: pads[rng.Intn(len(pads))],
				DateUTC:       time.Date(2006+rng.Intn(18), time.Month(1+rng.Intn(12)), 1, 0, 0, 0, 0, time.UTC),
			}
		}

		if got := ByRocketAndYear(launches).Total(); got != int64(n) {
			t.Errorf("n=%d: by-year total = %d", n, got)
		}
		if got := ByRocketAndSite(launches).Total(); got != int64(n) {
			t.Errorf("n=%d: by-site total = %d", n, got)
		}
	}
}

func TestDeterministic(t *testing.T) {
	launches := []models.Launch{
		enriched("Falcon", "Site 1", "2020-01-01T00:00:00Z"),
		enriched("Apollo", "Site 2", "2021-01-01T00:00:00Z"),
		enriched("Falcon", "Site 2", "2021-01-01T00:00:00Z"),
	}
	reversed := []models.Launch{launches[2], launches[1], launches[0]}

	first := ByRocketAndYear(launches)
	for i := 0; i < 5; i++ {
		if got := ByRocketAndYear(launches); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: ByRocketAndYear() = %v, want %v", i, got, first)
		}
	}
	if got := ByRocketAndYear(reversed); !reflect.DeepEqual(got, first) {
		t.Errorf("input order changed result: %v vs %v", got, first)
	}
	if a, b := ByRocketAndSite(launches), ByRocketAndSite(reversed); !reflect.DeepEqual(a, b) {
		t.Errorf("input order changed result: %v vs %v", a, b)
	}
}
