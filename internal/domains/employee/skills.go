package employee

import (
	"encoding/json"
	"fmt"
)

// Skills are persisted as a JSON-encoded array of tokens in a text column.
// EncodeSkills/DecodeSkills are the only code that knows that representation,
// so the storage format can change without touching the rest of the domain.

// EncodeSkills serializes an ordered skill list for storage.
func EncodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("failed to encode skills: %w", err)
	}
	return string(raw), nil
}

// DecodeSkills deserializes a stored skill list, preserving order.
func DecodeSkills(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	return skills, nil
}

// Skill is one entry of the fixed vocabulary offered by the selection widget.
// JSON keys match the select options the front end consumes.
type Skill struct {
	Token string `json:"value"`
	Label string `json:"label"`
}

// SkillVocabulary is the ordered token -> label mapping handed to the
// presentation layer. Tokens outside the vocabulary are not rejected
// server-side; the selection widget is the only gate (inherited behavior).
type SkillVocabulary []Skill

// Valid reports whether token belongs to the vocabulary.
func (v SkillVocabulary) Valid(token string) bool {
	for _, s := range v {
		if s.Token == token {
			return true
		}
	}
	return false
}

// Label returns the display label for token, falling back to the token itself.
func (v SkillVocabulary) Label(token string) string {
	for _, s := range v {
		if s.Token == token {
			return s.Label
		}
	}
	return token
}

// DefaultSkillVocabulary returns the vocabulary the employee form offers.
func DefaultSkillVocabulary() SkillVocabulary {
	return SkillVocabulary{
		{Token: "php", Label: "PHP"},
		{Token: "laravel", Label: "Laravel"},
		{Token: "react", Label: "React"},
		{Token: "mysql", Label: "MySQL"},
	}
}
