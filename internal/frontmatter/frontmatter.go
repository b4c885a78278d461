// Package frontmatter parses, serializes, and updates the YAML metadata
// block at the head of a Markdown note.
//
// The parser is deliberately lenient: a malformed or unclosed header
// degrades to "no frontmatter, whole file is body" instead of failing,
// so metadata corruption can never block read access to a note.
package frontmatter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const delim = "---\n"

// Parse splits content into its frontmatter mapping and body.
//
// The body is preserved byte for byte; only the frontmatter block itself
// is consumed. Three degenerate inputs all yield an empty mapping with
// the original content as body: no opening marker, an opening marker
// that is never closed, and a block whose YAML does not parse.
func Parse(content string) (map[string]any, string) {
	if !strings.HasPrefix(content, delim) {
		return map[string]any{}, content
	}

	rest := content[len(delim):]

	// Empty block: the closing marker follows the opening one directly.
	if strings.HasPrefix(rest, delim) {
		return map[string]any{}, rest[len(delim):]
	}

	var block, body string
	if idx := strings.Index(rest, "\n"+delim); idx >= 0 {
		block = rest[:idx+1]
		body = rest[idx+1+len(delim):]
	} else if strings.HasSuffix(rest, "\n---") {
		block = rest[:len(rest)-len("---")]
		body = ""
	} else {
		// Opened but never closed.
		return map[string]any{}, content
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return map[string]any{}, content
	}
	if len(fm) == 0 {
		// Parsed but semantically empty: the header looked intended yet
		// carries nothing, so treat the whole file as body.
		return map[string]any{}, content
	}
	return fm, body
}

// Serialize renders the mapping as a fenced YAML block followed by body.
// An empty mapping yields body unchanged, with no marker pair emitted.
func Serialize(fm map[string]any, body string) (string, error) {
	if len(fm) == 0 {
		return body, nil
	}
	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("frontmatter: marshal: %w", err)
	}
	return delim + string(data) + "---\n" + body, nil
}

// UpdateFile sets key to value in the note at path as one
// read-parse-mutate-serialize-write unit. The modified timestamp is
// always refreshed alongside. Malformed existing frontmatter is not an
// error; it degrades per Parse and the file is rebuilt around the new
// mapping.
func UpdateFile(path, key string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("frontmatter: read %s: %w", path, err)
	}

	fm, body := Parse(string(data))
	fm[key] = value
	fm["modified"] = Timestamp()

	out, err := Serialize(fm, body)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("frontmatter: write %s: %w", path, err)
	}
	return nil
}

// AddDefaults fills the mapping with the default fields of a fresh note:
// title, created, modified, and a random identifier under identKey.
// Existing values for these keys are overwritten unconditionally.
func AddDefaults(fm map[string]any, title, identKey string) {
	now := Timestamp()
	fm["created"] = now
	fm["modified"] = now
	fm["title"] = title
	fm[identKey] = uuid.NewString()
}

// Timestamp returns the current UTC time in RFC 3339 form, the
// machine-sortable format used for created/modified fields.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
