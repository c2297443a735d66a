// Package manifest detects dependency-manifest files in a repository listing.
//
// A [Registry] maps language names to the manifest filenames recognized for
// them, and an [ExclusionSet] names directories whose contents are never
// considered (vendored dependencies, build output, VCS metadata).
//
// Matching is done on the base filename only, exactly and case-sensitively,
// at any directory depth. A repository can therefore yield several manifests
// for the same language; all of them are reported.
//
//	detected := manifest.DefaultRegistry.Detect(paths, manifest.DefaultExclusions)
//	for _, group := range detected {
//	    fmt.Println(group.Language, group.Paths)
//	}
package manifest
