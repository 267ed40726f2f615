package filter

// defaultExcludes is applied to every pattern filter, after any configured
// excludes. It covers the version-control metadata and build-artifact
// directories that should never be read as schema documents.
var defaultExcludes = []string{
	"**/.git/**",
	"**/.git",
	"**/.svn/**",
	"**/.svn",
	"**/.hg/**",
	"**/.hg",
	"**/.bzr/**",
	"**/.bzr",
	"**/cvs/**",
	"**/cvs",
	"**/.ds_store",
	"**/target/**",
	"**/node_modules/**",
}
