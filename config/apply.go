package config

// Target receives loaded values. Both omni.StaticContainer and
// omni.OmniContainer satisfy it.
type Target interface {
	SetValue(id string, value any)
	SetAlias(id string, targetID string)
}

// Apply registers every parameter as a value and every alias.
func Apply(target Target, values Values) {
	for _, id := range values.IDs() {
		target.SetValue(id, values.Params[id])
	}
	for id, targetID := range values.Aliases {
		target.SetAlias(id, targetID)
	}
}
