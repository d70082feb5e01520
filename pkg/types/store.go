package types

import (
	"encoding/json"
)

// RuleLevel represents the configured severity level of a rule
type RuleLevel int32

const (
	RuleLevel_LEVEL_UNSPECIFIED RuleLevel = 0
	RuleLevel_ERROR             RuleLevel = 1
	RuleLevel_WARNING           RuleLevel = 2
	RuleLevel_DISABLED          RuleLevel = 3
)

func (l RuleLevel) String() string {
	switch l {
	case RuleLevel_ERROR:
		return "ERROR"
	case RuleLevel_WARNING:
		return "WARNING"
	case RuleLevel_DISABLED:
		return "DISABLED"
	default:
		return "LEVEL_UNSPECIFIED"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler for RuleLevel
func (l *RuleLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*l = parseRuleLevel(s)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for RuleLevel
func (l *RuleLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = parseRuleLevel(s)
	return nil
}

func parseRuleLevel(s string) RuleLevel {
	switch s {
	case "ERROR":
		return RuleLevel_ERROR
	case "WARNING":
		return RuleLevel_WARNING
	case "DISABLED":
		return RuleLevel_DISABLED
	default:
		return RuleLevel_LEVEL_UNSPECIFIED
	}
}

// Advice_Status represents the severity of an emitted advice
type Advice_Status int32

const (
	Advice_STATUS_UNSPECIFIED Advice_Status = 0
	Advice_SUCCESS            Advice_Status = 1
	Advice_WARNING            Advice_Status = 2
	Advice_ERROR              Advice_Status = 3
)

func (s Advice_Status) String() string {
	switch s {
	case Advice_SUCCESS:
		return "SUCCESS"
	case Advice_WARNING:
		return "WARNING"
	case Advice_ERROR:
		return "ERROR"
	default:
		return "STATUS_UNSPECIFIED"
	}
}

// MarshalJSON implements json.Marshaler for Advice_Status
func (s Advice_Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalYAML implements yaml.Marshaler for Advice_Status
func (s Advice_Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// PatternType classifies the statement role a rule targets
type PatternType int32

const (
	PatternType_PATTERN_TYPE_UNSPECIFIED PatternType = 0
	// PatternType_QUERY targets data-retrieval statements.
	PatternType_QUERY PatternType = 1
	// PatternType_CREATION targets schema-definition statements.
	PatternType_CREATION PatternType = 2
)

func (t PatternType) String() string {
	switch t {
	case PatternType_QUERY:
		return "QUERY"
	case PatternType_CREATION:
		return "CREATION"
	default:
		return "PATTERN_TYPE_UNSPECIFIED"
	}
}

// MarshalJSON implements json.Marshaler for PatternType
func (t PatternType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// MarshalYAML implements yaml.Marshaler for PatternType
func (t PatternType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// CheckRule is a per-rule configuration entry
type CheckRule struct {
	Type  string    `json:"type"  yaml:"type"`
	Level RuleLevel `json:"level" yaml:"level"`
}

// Advice represents a single finding produced by a rule
type Advice struct {
	Status        Advice_Status `json:"status"                  yaml:"status"`
	Code          int32         `json:"code"                    yaml:"code"`
	Type          string        `json:"type"                    yaml:"type"`
	Title         string        `json:"title"                   yaml:"title"`
	Content       string        `json:"content"                 yaml:"content"`
	PatternType   PatternType   `json:"patternType"             yaml:"patternType"`
	Statement     string        `json:"statement,omitempty"     yaml:"statement,omitempty"`
	StartPosition *Position     `json:"startPosition,omitempty" yaml:"startPosition,omitempty"`
}

// Position points at a location in the checked input, zero based
type Position struct {
	Line int32 `json:"line" yaml:"line"`
}
