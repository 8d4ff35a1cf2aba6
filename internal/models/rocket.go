package models

// Rocket is the subset of /rockets/{id} needed for enrichment.
type Rocket struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// DisplayName returns the rocket name, or RocketNameNA when absent.
func (r *Rocket) DisplayName() string {
	if r == nil || r.Name == nil {
		return RocketNameNA
	}
	return *r.Name
}
