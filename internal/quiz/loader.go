package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

const fixtureSuffix = ".json"

var (
	ErrFixtureIO = errors.New("fixture load failed")
	ErrEmptyPool = errors.New("fixture pool is empty")
)

type FixtureLoader interface {
	Load(ctx context.Context) ([]json.RawMessage, error)
}

type fixtureLoader struct {
	fsys fs.FS
	name string
}

func NewFixtureLoader(dir string) FixtureLoader {
	return &fixtureLoader{fsys: os.DirFS(dir), name: dir}
}

func NewFixtureLoaderFS(fsys fs.FS) FixtureLoader {
	return &fixtureLoader{fsys: fsys, name: "fs"}
}

// Load flattens the quizzes of every chapter of every theme file into one
// pool. Any unreadable or unparsable file aborts the whole load.
func (l *fixtureLoader) Load(ctx context.Context) ([]json.RawMessage, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: read dir %s: %w", ErrFixtureIO, l.name, err)
	}

	var pool []json.RawMessage
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fixtureSuffix) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, err := l.loadThemeFile(entry.Name())
		if err != nil {
			return nil, err
		}
		pool = append(pool, items...)
	}

	return pool, nil
}

func (l *fixtureLoader) loadThemeFile(name string) ([]json.RawMessage, error) {
	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrFixtureIO, path.Join(l.name, name), err)
	}

	var chapters []json.RawMessage
	if err := json.Unmarshal(raw, &chapters); err != nil {
		// Valid JSON that is not an array of chapters contributes nothing.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: parse %s: %w", ErrFixtureIO, path.Join(l.name, name), err)
	}

	var items []json.RawMessage
	for _, c := range chapters {
		items = append(items, chapterQuizzes(c)...)
	}
	return items, nil
}

// chapterQuizzes returns nil for chapters that are not objects or whose
// quizzes field is missing or not an array.
func chapterQuizzes(raw json.RawMessage) []json.RawMessage {
	var c chapter
	if err := json.Unmarshal(raw, &c); err != nil || len(c.Quizzes) == 0 {
		return nil
	}
	var quizzes []json.RawMessage
	if err := json.Unmarshal(c.Quizzes, &quizzes); err != nil {
		return nil
	}
	return quizzes
}
