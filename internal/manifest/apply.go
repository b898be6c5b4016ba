package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/filestage/internal/handle"
	"github.com/agentx-labs/filestage/internal/stage"
)

// Apply stages every entry of m in order and stops at the first failure.
// Entries applied before a failure are kept. Relative source paths are
// resolved against baseDir.
func Apply(s *stage.Stager, m *Manifest, baseDir string) ([]Result, error) {
	results := make([]Result, 0, len(m.Files))
	for i, entry := range m.Files {
		res, err := applyEntry(s, entry, baseDir)
		if err != nil {
			return results, fmt.Errorf("files[%d]: %w", i, err)
		}
		res.Index = i
		results = append(results, res)
	}
	return results, nil
}

func applyEntry(s *stage.Stager, e Entry, baseDir string) (Result, error) {
	if e.Source != "" {
		return importEntry(s, e, baseDir)
	}

	b, err := s.ForName(e.Name)
	if err != nil {
		return Result{}, err
	}
	switch e.Area {
	case "", AreaSession:
		b.ThisSessionOnly()
	case AreaPermanent:
		b.StorePermanently()
	default:
		return Result{}, fmt.Errorf("unknown area %q", e.Area)
	}
	if e.Unique != nil && !*e.Unique {
		b.PutDirectlyInTargetFolder()
	} else {
		b.PutInUniqueFolder()
	}

	var (
		f      *handle.File
		action Action
	)
	switch {
	case e.Content != nil:
		f, err = b.CreateFileWithContent([]byte(*e.Content))
		action = ActionWritten
	case e.Empty:
		f, err = b.CreateFile()
		action = ActionCreated
	default:
		return Result{}, fmt.Errorf("entry %q has neither content, source nor empty", e.Name)
	}
	if err != nil {
		return Result{}, err
	}
	return result(f, action)
}

func importEntry(s *stage.Stager, e Entry, baseDir string) (Result, error) {
	source := e.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(baseDir, source)
	}

	f, copied, err := s.Import(source)
	if err != nil {
		return Result{}, err
	}
	action := ActionRecognized
	if copied {
		action = ActionImported
	}
	return result(f, action)
}

func result(f *handle.File, action Action) (Result, error) {
	abs, err := f.AbsolutePath()
	if err != nil {
		return Result{}, err
	}
	return Result{Action: action, Area: f.Area().String(), Path: abs}, nil
}
