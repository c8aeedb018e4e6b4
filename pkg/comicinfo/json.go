package comicinfo

import "encoding/json"

// ToJSON renders the issue's stored fields as JSON. Multi-value fields
// appear as their raw delimited strings, not the derived lists, so the
// projection decodes back to an equal Issue.
func ToJSON(issue *Issue) ([]byte, error) {
	return json.MarshalIndent(issue, "", "  ")
}

// FromJSON reconstructs an Issue from its JSON projection.
func FromJSON(data []byte) (*Issue, error) {
	var issue Issue
	if err := json.Unmarshal(data, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}
