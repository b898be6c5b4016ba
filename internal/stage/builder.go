package stage

import (
	"github.com/agentx-labs/filestage/internal/area"
	"github.com/agentx-labs/filestage/internal/handle"
)

// Builder collects placement options for one desired file. Configuration
// calls return the same Builder and the last one wins.
type Builder struct {
	stager  *Stager
	name    string
	session bool
	unique  bool
}

func newBuilder(s *Stager, name string) *Builder {
	return &Builder{stager: s, name: name, session: true, unique: true}
}

// Name returns the desired file name.
func (b *Builder) Name() string { return b.name }

// ThisSessionOnly targets the session area. This is the default.
func (b *Builder) ThisSessionOnly() *Builder {
	b.session = true
	return b
}

// StorePermanently targets the permanent area.
func (b *Builder) StorePermanently() *Builder {
	b.session = false
	return b
}

// PutInUniqueFolder places the file inside a freshly generated token
// folder. This is the default.
func (b *Builder) PutInUniqueFolder() *Builder {
	b.unique = true
	return b
}

// PutDirectlyInTargetFolder places the file directly under the area root.
func (b *Builder) PutDirectlyInTargetFolder() *Builder {
	b.unique = false
	return b
}

func (b *Builder) area() area.Kind {
	if b.session {
		return area.Session
	}
	return area.Permanent
}

// GetFile resolves the options into a reference without creating anything.
// With unique foldering on, every call draws a new token, so two calls
// agree on area and name but not on the full path.
func (b *Builder) GetFile() (*handle.File, error) {
	rel := b.name
	if b.unique {
		rel = b.stager.tokens.Next() + "/" + b.name
	}
	f := handle.New(b.stager.fs, b.stager.resolver, rel, b.session)

	abs, err := f.AbsolutePath()
	if err != nil {
		return nil, ioFailure("resolve", f.String(), err)
	}
	b.stager.logger.Debug("resolved staged file",
		"name", b.name,
		"area", b.area().String(),
		"path", abs)
	return f, nil
}

// CreateFile resolves the reference and creates an empty file there.
func (b *Builder) CreateFile() (*handle.File, error) {
	f, err := b.GetFile()
	if err != nil {
		return nil, err
	}
	if err := f.Create(); err != nil {
		return nil, ioFailure("create file", f.String(), err)
	}
	return f, nil
}

// CreateFileWithContent creates the file and writes content into it,
// replacing anything already there. If the write fails the empty file is
// left in place.
func (b *Builder) CreateFileWithContent(content []byte) (*handle.File, error) {
	f, err := b.CreateFile()
	if err != nil {
		return nil, err
	}
	if err := f.WriteContent(content); err != nil {
		return nil, ioFailure("create file with content", f.String(), err)
	}
	return f, nil
}
