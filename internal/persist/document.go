// Package persist stores the launcher layout as a JSON document of tagged
// entries, one per grid slot. Icons are resolved at runtime and never saved.
package persist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/ytget/launchgrid/internal/model"
)

var (
	// ErrNoLayout means there is no usable saved layout and the caller
	// should build one from discovery.
	ErrNoLayout = errors.New("no saved layout")

	// ErrInvalidDocument means the saved document failed validation
	ErrInvalidDocument = errors.New("invalid layout document")
)

type appEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type folderEntry struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []appEntry `json:"items"`
}

type entry struct {
	Type   string       `json:"type"`
	App    *appEntry    `json:"app,omitempty"`
	Folder *folderEntry `json:"folder,omitempty"`
	ID     string       `json:"id,omitempty"`
}

// Encode serializes a layout
func Encode(elements []model.Element) ([]byte, error) {
	entries := make([]entry, 0, len(elements))
	for _, e := range elements {
		switch v := e.(type) {
		case model.Application:
			entries = append(entries, entry{Type: string(model.KindApp), App: toAppEntry(v)})
		case model.Folder:
			items := make([]appEntry, 0, len(v.Items))
			for _, item := range v.Items {
				items = append(items, *toAppEntry(item))
			}
			entries = append(entries, entry{
				Type:   string(model.KindFolder),
				Folder: &folderEntry{ID: v.ID.String(), Name: v.Name, Items: items},
			})
		case model.Empty:
			entries = append(entries, entry{Type: string(model.KindEmpty), ID: v.ID.String()})
		default:
			return nil, fmt.Errorf("unknown element %T", e)
		}
	}

	data, err := sonic.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// Decode parses and validates a layout document. Any failure wraps
// ErrInvalidDocument.
func Decode(data []byte) ([]model.Element, error) {
	var entries []entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	seen := make(map[model.ID]bool, len(entries))
	claim := func(raw string) (model.ID, error) {
		id, err := model.ParseID(raw)
		if err != nil {
			return "", err
		}
		if seen[id] {
			return "", fmt.Errorf("duplicate id %s", id)
		}
		seen[id] = true
		return id, nil
	}
	app := func(a appEntry) (model.Application, error) {
		id, err := claim(a.ID)
		if err != nil {
			return model.Application{}, err
		}
		if strings.TrimSpace(a.Path) == "" {
			return model.Application{}, fmt.Errorf("application %s has no path", id)
		}
		return model.Application{ID: id, Name: a.Name, Path: a.Path}, nil
	}

	elements := make([]model.Element, 0, len(entries))
	for i, en := range entries {
		e, err := decodeEntry(en, claim, app)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidDocument, i, err)
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func decodeEntry(
	en entry,
	claim func(string) (model.ID, error),
	app func(appEntry) (model.Application, error),
) (model.Element, error) {
	switch model.Kind(en.Type) {
	case model.KindApp:
		if en.App == nil {
			return nil, errors.New("app entry without body")
		}
		return app(*en.App)
	case model.KindFolder:
		if en.Folder == nil {
			return nil, errors.New("folder entry without body")
		}
		id, err := claim(en.Folder.ID)
		if err != nil {
			return nil, err
		}
		if len(en.Folder.Items) == 0 {
			return nil, fmt.Errorf("folder %s has no items", id)
		}
		folder := model.Folder{ID: id, Name: en.Folder.Name, Items: make([]model.Application, 0, len(en.Folder.Items))}
		for _, item := range en.Folder.Items {
			a, err := app(item)
			if err != nil {
				return nil, err
			}
			folder.Items = append(folder.Items, a)
		}
		return folder, nil
	case model.KindEmpty:
		id, err := claim(en.ID)
		if err != nil {
			return nil, err
		}
		return model.Empty{ID: id}, nil
	default:
		return nil, fmt.Errorf("unknown entry type %q", en.Type)
	}
}

func toAppEntry(a model.Application) *appEntry {
	return &appEntry{ID: a.ID.String(), Name: a.Name, Path: a.Path}
}
