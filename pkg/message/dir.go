package message

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/phrasekit/phrasekit/pkg/errors"
)

// LoadDir reads extracted message files from a messages directory. Each file
// is a JSON array of {id, defaultMessage} objects; files are concatenated in
// glob order. The argument may be a plain directory (all *.json files in it
// are read) or a glob pattern.
func LoadDir(dir string) ([]Message, error) {
	pattern := dir
	if !strings.ContainsAny(dir, "*?[") {
		pattern = filepath.Join(dir, "*.json")
	}

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.NewValidationError("messagesDir", dir, "invalid glob pattern: "+err.Error())
	}
	sort.Strings(paths)

	var msgs []Message
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		var fileMsgs []Message
		if err := json.Unmarshal(data, &fileMsgs); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
		msgs = append(msgs, fileMsgs...)
	}
	return msgs, nil
}
