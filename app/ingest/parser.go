package ingest

import (
	"encoding/json"
	"fmt"
)

// Parser decodes archived payload files. Files are double-encoded: the
// file content is a JSON string literal whose content is itself the
// provider's JSON response. The two layers are parsed separately to stay
// compatible with already-archived payloads.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Run(data []byte) ([]Element, error) {
	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil, fmt.Errorf("failed to parse payload envelope: %w", err)
	}

	var payload envelope
	if err := json.Unmarshal([]byte(inner), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse payload content: %w", err)
	}

	if payload.ElementList == nil {
		return nil, fmt.Errorf("payload has no elementList")
	}

	return *payload.ElementList, nil
}
