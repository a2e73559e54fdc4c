package hypixel

import "encoding/json"

// playerResponse is the envelope the player endpoint wraps every reply in.
// On failure success is false and cause carries the reason; a throttled key
// additionally sets throttle.
type playerResponse struct {
	Success  bool            `json:"success"`
	Cause    string          `json:"cause"`
	Throttle bool            `json:"throttle"`
	Player   json.RawMessage `json:"player"`
}

// Player is one player document from the Hypixel API. Beyond the identity
// fields the document is a large nested map whose keys vary per player, so
// the full decoded form is retained for path lookups.
type Player struct {
	UUID        string
	Displayname string

	raw map[string]any
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var ident struct {
		UUID        string `json:"uuid"`
		Displayname string `json:"displayname"`
	}
	if err := json.Unmarshal(data, &ident); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.UUID = ident.UUID
	p.Displayname = ident.Displayname
	p.raw = raw
	return nil
}

// Raw returns the full decoded player document.
func (p *Player) Raw() map[string]any {
	return p.raw
}
