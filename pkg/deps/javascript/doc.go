// Package javascript parses npm package.json manifests.
//
// # Manifest Parsing
//
//	deps, err := (&javascript.PackageJSON{}).Parse(content)
//
// The dependencies object is merged first and devDependencies second, so a
// package listed in both reports its devDependencies version.
// peerDependencies and optionalDependencies are not read.
package javascript
