package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

type Response struct {
	Code    int
	Header  http.Header
	RawBody []byte

	// Body is either JSON or Array.
	Body any
}

// Parameter is encoded as the query string, keys sorted.
type Parameter map[string]string

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, key+"="+PercentEncode(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

type JSON map[string]any

type Array []JSON

func parseBody(body []byte) any {
	if len(body) == 0 {
		return JSON{}
	}

	object := JSON{}
	if err := json.Unmarshal(body, &object); err == nil {
		return object
	}

	array := Array{}
	if err := json.Unmarshal(body, &array); err == nil {
		return array
	}

	return nil
}
