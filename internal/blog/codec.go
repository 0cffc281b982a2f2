package blog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Collection is the full set of posts persisted as one document, newest
// first.
type Collection struct {
	Posts []Post `json:"posts"`
}

// DecodeDocument parses the persisted form of a collection. Malformed input
// is an error here; read paths that want the degrade-to-empty behavior go
// through ReadDocument and map the error themselves.
func DecodeDocument(data []byte) (Collection, error) {
	if len(data) == 0 {
		return Collection{Posts: []Post{}}, nil
	}
	var col Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return Collection{}, fmt.Errorf("decode posts document: %w", err)
	}
	if col.Posts == nil {
		col.Posts = []Post{}
	}
	return col, nil
}

// ReadDocument loads the collection from path. A missing file is an empty
// collection; any other read or parse failure surfaces as an error.
func ReadDocument(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{Posts: []Post{}}, nil
		}
		return Collection{}, err
	}
	return DecodeDocument(data)
}

// EncodeDocument serializes the whole collection, indented, with a trailing
// newline. The document is always overwritten as a unit, never patched.
func EncodeDocument(col Collection) ([]byte, error) {
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
