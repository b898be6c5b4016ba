// Package stage creates files inside the managed storage areas.
//
// A Stager carries the collaborators (area resolver, filesystem, token
// generator, clock) and hands out Builders. A Builder collects placement
// options for one desired file name and resolves them into a handle.File:
//
//	s := stage.New(area.EnvResolver{})
//	b, err := s.ForName("report.txt")
//	if err != nil {
//		return err
//	}
//	f, err := b.StorePermanently().CreateFileWithContent(data)
//
// By default files go to the session area inside a freshly generated token
// folder, so two files with the same name do not overwrite each other.
// CopyFromFile brings an external file under management, recognizing files
// that already live inside one of the areas instead of copying them.
package stage
