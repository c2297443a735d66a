// Package php parses Composer composer.json manifests.
//
// Only the "require" object is read; require-dev is ignored. Platform
// requirements such as "php" or "ext-json" are reported like any other
// package.
package php
