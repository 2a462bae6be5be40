package problemgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/scoreprep/internal/report"
)

// PlaceholderText replaces the text of a question that arrived without one.
const PlaceholderText = "Question text unavailable."

var fencedBlock = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \\t]*\\r?\\n?(.*?)```")

// Extract recovers the list of questions from a generation response.
//
// Recovery stops at the first step that yields an array: the text parsed
// as a JSON array, the content of a fenced code block, the array field of a
// JSON object, and finally the span between the first '[' and the last ']'.
// Elements are normalized with now as the timestamp of synthesized ids.
// When no step succeeds a *MalformedResponseError carrying raw is returned.
func Extract(raw string, now time.Time) ([]GeneratedQuestion, error) {
	items, err := recoverArray(raw)
	if err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	return normalize(items, now), nil
}

func recoverArray(raw string) ([]json.RawMessage, error) {
	text := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))

	if items, ok := decodeArray(text); ok {
		return items, nil
	}

	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if items, ok := decodeArray(inner); ok {
			return items, nil
		}
		if items, ok := unwrapObject(inner); ok {
			return items, nil
		}
		if items, ok := sliceBrackets(inner); ok {
			return items, nil
		}
	}

	if items, ok := unwrapObject(text); ok {
		return items, nil
	}

	if items, ok := sliceBrackets(text); ok {
		return items, nil
	}

	return nil, errNoArray
}

func decodeArray(text string) ([]json.RawMessage, bool) {
	if !strings.HasPrefix(text, "[") {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}
	return items, true
}

// unwrapObject accepts {"questions": [...]} or an object with exactly one
// array-valued field.
func unwrapObject(text string) ([]json.RawMessage, bool) {
	if !strings.HasPrefix(text, "{") {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}

	for k, v := range obj {
		if strings.EqualFold(k, "questions") {
			if items, ok := decodeArray(string(bytes.TrimSpace(v))); ok {
				return items, true
			}
		}
	}

	var found []json.RawMessage
	arrays := 0
	for _, v := range obj {
		if items, ok := decodeArray(string(bytes.TrimSpace(v))); ok {
			found = items
			arrays++
		}
	}
	if arrays == 1 {
		return found, true
	}
	return nil, false
}

func sliceBrackets(text string) ([]json.RawMessage, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, false
	}
	return decodeArray(text[start : end+1])
}

func normalize(items []json.RawMessage, now time.Time) []GeneratedQuestion {
	out := make([]GeneratedQuestion, 0, len(items))
	for i, item := range items {
		q, ok := toQuestion(item)
		if !ok {
			continue
		}
		if strings.TrimSpace(q.ID) == "" {
			q.ID = fmt.Sprintf("question-%d-%d", now.UnixMilli(), i)
		}
		if strings.TrimSpace(q.Text) == "" {
			q.Text = PlaceholderText
		}
		out = append(out, q)
	}
	return out
}

// toQuestion converts one array element. Objects map field by field, bare
// strings become the question text, anything else is dropped.
func toQuestion(item json.RawMessage) (GeneratedQuestion, bool) {
	item = bytes.TrimSpace(item)
	if len(item) == 0 {
		return GeneratedQuestion{}, false
	}

	switch item[0] {
	case '"':
		var text string
		if err := json.Unmarshal(item, &text); err != nil {
			return GeneratedQuestion{}, false
		}
		return GeneratedQuestion{Text: text}, true
	case '{':
	default:
		return GeneratedQuestion{}, false
	}

	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return GeneratedQuestion{}, false
	}

	return GeneratedQuestion{
		ID:          scalarString(fields["id"]),
		Text:        scalarString(fields["text"]),
		Topic:       scalarString(fields["topic"]),
		Difficulty:  report.Difficulty(scalarString(fields["difficulty"])),
		Options:     stringList(fields["options"]),
		Answer:      scalarString(fields["answer"]),
		Explanation: scalarString(fields["explanation"]),
	}, true
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, scalarString(e))
	}
	return out
}
