package json

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal decodes JSON data into v.
func Unmarshal(data []byte, v any) error {
	return jsonAPI.Unmarshal(data, v)
}
