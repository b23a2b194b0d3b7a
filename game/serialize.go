package game

import "encoding/json"

// Serialize renders the full state, history and timestamps included, as
// JSON. Round-tripping through Deserialize reproduces an identical state.
func (gs *GameState) Serialize() ([]byte, error) {
	return json.Marshal(gs)
}

// Deserialize restores a state produced by Serialize.
func Deserialize(data []byte) (*GameState, error) {
	var gs GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}
