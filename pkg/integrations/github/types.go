package github

// Repo represents one entry of a user's repository listing.
type Repo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	DefaultBranch string `json:"default_branch"`
	Language      string `json:"language"`
	PushedAt      string `json:"pushed_at"`
}

// RepoInfo contains repository metadata.
type RepoInfo struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Archived      bool   `json:"archived"`
}

// TreeEntry represents a file or directory in the repository tree.
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"` // "blob", "tree" or "commit"
	Size int    `json:"size,omitempty"`
}

// IsFile reports whether the entry is a regular file.
func (e TreeEntry) IsFile() bool { return e.Type == entryBlob }

const entryBlob = "blob"

// apiRepoResponse is the internal GitHub API response structure.
type apiRepoResponse struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Archived      bool   `json:"archived"`
}

type treeResponse struct {
	SHA  string `json:"sha"`
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
		Size int    `json:"size"`
	} `json:"tree"`
	Truncated bool `json:"truncated"`
}
