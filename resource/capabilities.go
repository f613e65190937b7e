package resource

// Capacity is how many resources of a kind the bridge holds and how many
// more it can hold.
type Capacity struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

// Capabilities reports the bridge's resource limits.
type Capabilities struct {
	Lights  Capacity `json:"lights"`
	Sensors struct {
		Capacity
		CLIP Capacity `json:"clip"`
		ZLL  Capacity `json:"zll"`
		ZGP  Capacity `json:"zgp"`
	} `json:"sensors"`
	Groups Capacity `json:"groups"`
	Scenes struct {
		Capacity
		LightStates Capacity `json:"lightstates"`
	} `json:"scenes"`
	Schedules Capacity `json:"schedules"`
	Rules     struct {
		Capacity
		Conditions Capacity `json:"conditions"`
		Actions    Capacity `json:"actions"`
	} `json:"rules"`
	Resourcelinks Capacity `json:"resourcelinks"`
	Streaming     struct {
		Capacity
		Channels int `json:"channels"`
	} `json:"streaming"`
	Timezones struct {
		Values []string `json:"values"`
	} `json:"timezones"`
}
