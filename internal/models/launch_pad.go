package models

// LaunchPad is the subset of /launchpads/{id} needed for enrichment.
type LaunchPad struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// DisplayName returns the launch pad name, or LaunchPadNameNA when absent.
func (p *LaunchPad) DisplayName() string {
	if p == nil || p.Name == nil {
		return LaunchPadNameNA
	}
	return *p.Name
}
