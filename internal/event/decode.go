package event

import "encoding/json"

// DecodePayload decodes an event payload into T, first by type assertion and
// then by a JSON round trip. In-process MemoryBus payloads are already the
// right struct; payloads revived from the dead-letter file are maps.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
